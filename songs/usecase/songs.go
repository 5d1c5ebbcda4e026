package usecase

import (
	"context"
	"fmt"
	"log"

	"foundsongs/songs"
)

type Usecase struct {
	cf songs.CatalogFetcher
	s  songs.Store
	l  *log.Logger
}

func New(cf songs.CatalogFetcher, s songs.Store, l *log.Logger) Usecase {
	return Usecase{
		cf: cf,
		s:  s,
		l:  l,
	}
}

// Refresh fetches the catalog, filters the results and persists them.
// A failed save is logged and does not fail the refresh.
func (u Usecase) Refresh(ctx context.Context) ([]songs.Song, error) {
	handleErr := func(err error) ([]songs.Song, error) {
		return nil, fmt.Errorf("usecase: refresh: %w", err)
	}
	items, err := u.cf.FetchSongs(ctx)
	if err != nil {
		return handleErr(err)
	}
	filtered := songs.Filter(items)
	if err := u.s.SaveSongs(ctx, filtered); err != nil {
		u.l.Print(err)
	}
	return filtered, nil
}

// Saved returns the last persisted snapshot.
func (u Usecase) Saved(ctx context.Context) ([]songs.Song, error) {
	sngs, err := u.s.LoadSongs(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: saved: %w", err)
	}
	return sngs, nil
}
