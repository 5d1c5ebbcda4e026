package config

import (
	"os"
	"path/filepath"
	"testing"

	"foundsongs/drivers/fetcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, fetcher.DefaultCfg(), cfg.FetcherCfg())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	configContent := `
[catalog]
term = "dempsey"

[store]
type = "Redis"
redis_addr = "cache:6379"
redis_db = 2
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "dempsey", cfg.Catalog.Term)
	assert.Equal(t, fetcher.DefaultBaseURI, cfg.Catalog.BaseURL)
	assert.Equal(t, fetcher.DefaultEntity, cfg.Catalog.Entity)
	assert.Equal(t, StoreRedis, cfg.Store.Type)
	assert.Equal(t, "cache:6379", cfg.Store.RedisAddr)
	assert.Equal(t, 2, cfg.Store.RedisDB)
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[store\ntype = sqlite"), 0644))
	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoadUnknownStoreType(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[store]\ntype = \"s3\"\n"), 0644))
	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.type")
}

func TestValidateMissingFields(t *testing.T) {
	cfg := Default()
	cfg.Catalog.BaseURL = ""
	cfg.Store.SqlitePath = " "
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.base_url")
	assert.Contains(t, err.Error(), "store.sqlite_path")
}
