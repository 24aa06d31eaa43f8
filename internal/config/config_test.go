package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/f3rmion/holocron/internal/holocron"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`api:
  base_url: http://localhost:8080/api
  timeout: 3s
images:
  enabled: false
filters:
  films:
    - value: "6"
      label: Revenge of the Sith
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), data, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Images.Enabled)
	require.Len(t, cfg.Filters.Films, 1)
	assert.Equal(t, "Revenge of the Sith", cfg.Filters.Films[0].Label)
	// untouched sections keep their defaults
	assert.Len(t, cfg.Filters.HomeWorlds, 3)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("api: [unterminated"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := Default()
	cfg.API.BaseURL = "http://catalog.test/api"
	cfg.Filters.Species = append(cfg.Filters.Species, FilterOption{Value: "3", Label: "Wookie"})

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFiltersConfig_Options(t *testing.T) {
	f := Default().Filters
	assert.Equal(t, "Tatooine", f.Options(holocron.FilterHomeWorld)[0].Label)
	assert.Equal(t, "A New Hope", f.Options(holocron.FilterFilm)[0].Label)
	assert.Equal(t, "Droid", f.Options(holocron.FilterSpecies)[1].Label)
	assert.Nil(t, f.Options(holocron.FilterKind(42)))
}

func TestLogFile(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/cfg", "holocron.log"), cfg.LogFile("/cfg"))

	cfg.Logging.File = "/var/log/holocron.log"
	assert.Equal(t, "/var/log/holocron.log", cfg.LogFile("/cfg"))
}

func TestGetConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "holocron"), dir)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger("warn", &buf)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	logger.Info().Msg("hidden")
	logger.Warn().Str("component", "test").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"component":"test"`)

	assert.Equal(t, zerolog.InfoLevel, NewLogger("bogus", &buf).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger("", &buf).GetLevel())
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "holocron.log")

	logger, closer, err := OpenLogFile("debug", path)
	require.NoError(t, err)
	logger.Debug().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
