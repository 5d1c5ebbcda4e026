package screen

import (
	"context"
	"log"

	"foundsongs/songs"

	"github.com/google/uuid"
)

type Refresher interface {
	Refresh(ctx context.Context) ([]songs.Song, error)
}

// Screen is the single song list screen: opening it refreshes in the
// background and hands the result to the presenter on the loop.
type Screen struct {
	loop *Loop
	p    *ListPresenter
	r    Refresher
	l    *log.Logger
}

func New(loop *Loop, p *ListPresenter, r Refresher, l *log.Logger) *Screen {
	return &Screen{
		loop: loop,
		p:    p,
		r:    r,
		l:    l,
	}
}

func (s *Screen) Presenter() *ListPresenter {
	return s.p
}

// Open starts the refresh. The returned channel is closed once the presenter
// has been updated on the loop, or once the refresh has failed. Failures are
// logged and leave the presenter as it was.
func (s *Screen) Open(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	id := uuid.NewString()
	go func() {
		s.l.Printf("refresh %s: started", id)
		sngs, err := s.r.Refresh(ctx)
		if err != nil {
			s.l.Printf("refresh %s: %v", id, err)
			close(done)
			return
		}
		if err := s.loop.Post(ctx, func() {
			s.p.Set(sngs)
			s.l.Printf("refresh %s: showing %d rows", id, s.p.RowCount())
			close(done)
		}); err != nil {
			s.l.Printf("refresh %s: %v", id, err)
			close(done)
		}
	}()
	return done
}
