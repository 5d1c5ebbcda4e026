package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foundsongs/songs"

	goredis "github.com/go-redis/redis/v9"
)

type Redis struct {
	client *goredis.Client
	key    string
	l      *log.Logger
}

func NewRedisClient(ctx context.Context, addr string, db int, l *log.Logger) (*goredis.Client, func(), error) {
	client := goredis.NewClient(
		&goredis.Options{
			Network:         "tcp",
			Addr:            addr,
			DB:              db,
			MaxRetries:      3,
			MinRetryBackoff: 50 * time.Millisecond,
			MaxRetryBackoff: 2 * time.Second,
			DialTimeout:     10 * time.Second,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			MinIdleConns:    1,
			MaxIdleConns:    4,
			ConnMaxIdleTime: time.Minute,
			ConnMaxLifetime: time.Hour,
		},
	)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("new redis client ping: %w", err)
	}
	return client, func() {
		if err := client.Close(); err != nil {
			l.Println(err)
		}
	}, nil
}

func NewRedis(client *goredis.Client, l *log.Logger) Redis {
	return Redis{
		client: client,
		key:    songs.StoreKey,
		l:      l,
	}
}

var _ songs.Store = Redis{}

func (r Redis) SaveSongs(ctx context.Context, sngs []songs.Song) error {
	handleErr := func(err error) error {
		return fmt.Errorf("redis: save songs: %w", err)
	}
	raw, err := MarshalSongs(sngs)
	if err != nil {
		return handleErr(err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return handleErr(err)
	}
	r.l.Printf("saved %d songs under %q", len(sngs), r.key)
	return nil
}

func (r Redis) LoadSongs(ctx context.Context) ([]songs.Song, error) {
	handleErr := func(err error) ([]songs.Song, error) {
		return nil, fmt.Errorf("redis: load songs: %w", err)
	}
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
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
