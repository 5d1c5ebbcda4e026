// Package config loads foundsongs settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"foundsongs/drivers/fetcher"

	"github.com/pelletier/go-toml/v2"
)

const (
	StoreSqlite = "sqlite"
	StoreRedis  = "redis"
)

// Catalog configures the search endpoint and query.
type Catalog struct {
	BaseURL string `toml:"base_url"`
	Term    string `toml:"term"`
	Media   string `toml:"media"`
	Entity  string `toml:"entity"`
}

// Store selects where the filtered result set is persisted.
type Store struct {
	Type       string `toml:"type"`
	SqlitePath string `toml:"sqlite_path"`
	RedisAddr  string `toml:"redis_addr"`
	RedisDB    int    `toml:"redis_db"`
}

type Config struct {
	Catalog Catalog `toml:"catalog"`
	Store   Store   `toml:"store"`
}

func Default() Config {
	return Config{
		Catalog: Catalog{
			BaseURL: fetcher.DefaultBaseURI,
			Term:    fetcher.DefaultTerm,
			Media:   fetcher.DefaultMedia,
			Entity:  fetcher.DefaultEntity,
		},
		Store: Store{
			Type:       StoreSqlite,
			SqlitePath: "foundsongs.sqlite",
			RedisAddr:  "localhost:6379",
		},
	}
}

// Load overlays the file at path on the defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.Store.Type = strings.ToLower(strings.TrimSpace(cfg.Store.Type))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Catalog.BaseURL) == "" {
		errs = append(errs, errors.New("catalog.base_url is required"))
	}
	if strings.TrimSpace(c.Catalog.Term) == "" {
		errs = append(errs, errors.New("catalog.term is required"))
	}
	switch c.Store.Type {
	case StoreSqlite:
		if strings.TrimSpace(c.Store.SqlitePath) == "" {
			errs = append(errs, errors.New("store.sqlite_path is required for the sqlite store"))
		}
	case StoreRedis:
		if strings.TrimSpace(c.Store.RedisAddr) == "" {
			errs = append(errs, errors.New("store.redis_addr is required for the redis store"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.type must be %q or %q, got %q", StoreSqlite, StoreRedis, c.Store.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) FetcherCfg() fetcher.Cfg {
	return fetcher.Cfg{
		BaseURI: c.Catalog.BaseURL,
		Term:    c.Catalog.Term,
		Media:   c.Catalog.Media,
		Entity:  c.Catalog.Entity,
	}
}
