package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 151, cfg.PokeAPI.PageSize)
	assert.Equal(t, "en", cfg.PokeAPI.Language)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pokedex.yaml")
	yaml := `
pokeapi:
  base_url: http://example.test/api/v2
  page_size: 20
  max_workers: 4
server:
  port: 9090
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("POKEDEX_POKEAPI_PAGE_SIZE", "30")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 30, cfg.PokeAPI.PageSize)
	assert.Equal(t, 4, cfg.PokeAPI.MaxWorkers)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		PokeAPI: PokeAPIConfig{BaseURL: "http://x", PageSize: 1},
		Log:     LogConfig{Level: "info"},
	}
	require.NoError(t, valid.Validate())

	t.Run("page size", func(t *testing.T) {
		c := valid
		c.PokeAPI.PageSize = 0
		assert.Error(t, c.Validate())
	})

	t.Run("negative workers", func(t *testing.T) {
		c := valid
		c.PokeAPI.MaxWorkers = -1
		assert.Error(t, c.Validate())
	})

	t.Run("log level", func(t *testing.T) {
		c := valid
		c.Log.Level = "loud"
		assert.Error(t, c.Validate())
	})
}
