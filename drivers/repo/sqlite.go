package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"foundsongs/songs"
)

type Sqlite struct {
	sync.RWMutex
	db  *sql.DB
	key string
}

func NewSqlite(db *sql.DB) *Sqlite {
	return &Sqlite{
		db:  db,
		key: songs.StoreKey,
	}
}

var _ songs.Store = (*Sqlite)(nil)

func (s *Sqlite) Create() error {
	defer s.lock()()
	handleErr := func(err error) error {
		return fmt.Errorf("create sqlite db: %w", err)
	}
	const q = `CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB
		)`
	if _, err := s.db.Exec(q); err != nil {
		return handleErr(err)
	}
	return nil
}

func (s *Sqlite) SaveSongs(ctx context.Context, sngs []songs.Song) error {
	defer s.lock()()
	handleErr := func(err error) error {
		return fmt.Errorf("sqlite: save songs: %w", err)
	}
	raw, err := MarshalSongs(sngs)
	if err != nil {
		return handleErr(err)
	}
	if err := s.tx(ctx, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO kv (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value`
		_, err := tx.ExecContext(ctx, q, s.key, raw)
		return err
	}); err != nil {
		return handleErr(err)
	}
	return nil
}

func (s *Sqlite) LoadSongs(ctx context.Context) ([]songs.Song, error) {
	defer s.rlock()()
	handleErr := func(err error) ([]songs.Song, error) {
		return nil, fmt.Errorf("sqlite: load songs: %w", err)
	}
	const q = "SELECT value FROM kv WHERE key = $1"
	var raw []byte
	if err := s.db.QueryRowContext(ctx, q, s.key).Scan(&raw); errors.Is(err, sql.ErrNoRows) {
		return handleErr(songs.ErrNotFound)
	} else if err != nil {
		return handleErr(err)
	}
	sngs, err := UnmarshalSongs(raw)
	if err != nil {
		return handleErr(err)
	}
	return sngs, nil
}

func (s *Sqlite) rlock() func() {
	s.RLock()
	return func() {
		s.RUnlock()
	}
}

func (s *Sqlite) lock() func() {
	s.Lock()
	return func() {
		s.Unlock()
	}
}

func (s *Sqlite) tx(ctx context.Context, run func(tx *sql.Tx) error) error {
	handleErr := func(err error) error {
		return fmt.Errorf("sqlite tx: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return handleErr(err)
	}
	if err := run(tx); err != nil {
		if er := tx.Rollback(); er != nil {
			return handleErr(fmt.Errorf("rollback: %v: %w", er, err))
		}
		return handleErr(err)
	}
	if er := tx.Commit(); er != nil {
		return handleErr(er)
	}
	return nil
}
