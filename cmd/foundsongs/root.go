package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"

	"foundsongs/drivers/fetcher"
	"foundsongs/drivers/repo"
	"foundsongs/internal/config"
	"foundsongs/screen"
	"foundsongs/songs"
	"foundsongs/songs/usecase"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

func newRootCommand(l *log.Logger, out io.Writer) *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "foundsongs",
		Short:         "Search the music catalog and keep the matching songs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(&cobra.Command{
		Use:   "fetch",
		Short: "Fetch, filter, save and show the song list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), l, out, configPath)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the last saved song list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), l, out, configPath)
		},
	})
	return root
}

func runFetch(ctx context.Context, l *log.Logger, out io.Writer, configPath string) error {
	handleErr := func(err error) error {
		return fmt.Errorf("fetch: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return handleErr(err)
	}
	ctx, cancel := signalContext(ctx)
	defer cancel()
	st, cleanup, err := openStore(ctx, cfg, l)
	if err != nil {
		return handleErr(err)
	}
	defer cleanup()
	rt := &http.Transport{}
	cat := fetcher.NewCatalog(rt, cfg.FetcherCfg())
	u := usecase.New(cat, st, l)

	loop := screen.NewLoop()
	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	go func() {
		_ = loop.Run(loopCtx)
	}()
	s := screen.New(loop, screen.NewListPresenter(screen.NewTableRenderer(out), l), u, l)
	select {
	case <-s.Open(ctx):
	case <-ctx.Done():
		return handleErr(ctx.Err())
	}
	return nil
}

func runShow(ctx context.Context, l *log.Logger, out io.Writer, configPath string) error {
	handleErr := func(err error) error {
		return fmt.Errorf("show: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return handleErr(err)
	}
	ctx, cancel := signalContext(ctx)
	defer cancel()
	st, cleanup, err := openStore(ctx, cfg, l)
	if err != nil {
		return handleErr(err)
	}
	defer cleanup()
	sngs, err := usecase.New(nil, st, l).Saved(ctx)
	if err != nil {
		return handleErr(err)
	}
	p := screen.NewListPresenter(screen.NewTableRenderer(out), l)
	p.Set(sngs)
	return nil
}

func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}

func openStore(ctx context.Context, cfg config.Config, l *log.Logger) (songs.Store, func(), error) {
	handleErr := func(err error) (songs.Store, func(), error) {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	switch cfg.Store.Type {
	case config.StoreRedis:
		client, cleanup, err := repo.NewRedisClient(ctx, cfg.Store.RedisAddr, cfg.Store.RedisDB, l)
		if err != nil {
			return handleErr(err)
		}
		return repo.NewRedis(client, l), cleanup, nil
	default:
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=rwc&cache=shared", cfg.Store.SqlitePath))
		if err != nil {
			return handleErr(err)
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				l.Println(err)
			}
		}
		s := repo.NewSqlite(db)
		if err := s.Create(); err != nil {
			cleanup()
			return handleErr(err)
		}
		return s, cleanup, nil
	}
}
