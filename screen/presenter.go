package screen

import (
	"log"

	"foundsongs/songs"
)

type State int

const (
	Empty State = iota
	Loaded
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

type Row struct {
	Title,
	Subtitle string
}

type Renderer interface {
	Render(rows []Row) error
}

// ListPresenter backs a list with one row per song. It is not safe for
// concurrent use; call it from the Loop.
type ListPresenter struct {
	songs []songs.Song
	state State
	r     Renderer
	l     *log.Logger
}

func NewListPresenter(r Renderer, l *log.Logger) *ListPresenter {
	return &ListPresenter{
		r: r,
		l: l,
	}
}

// Set replaces the backing songs wholesale and renders once.
func (p *ListPresenter) Set(sngs []songs.Song) {
	p.songs = sngs
	p.state = Loaded
	if err := p.r.Render(p.Rows()); err != nil {
		p.l.Print(err)
	}
}

func (p *ListPresenter) State() State {
	return p.state
}

func (p *ListPresenter) RowCount() int {
	return len(p.songs)
}

func (p *ListPresenter) Row(i int) Row {
	s := p.songs[i]
	return Row{
		Title:    s.TrackName,
		Subtitle: s.ArtistName,
	}
}

func (p *ListPresenter) Rows() []Row {
	rows := make([]Row, 0, p.RowCount())
	for i := range p.songs {
		rows = append(rows, p.Row(i))
	}
	return rows
}
