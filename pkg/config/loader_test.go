package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/config"
)

type successConfig struct {
	Code     string   `env:"TEST_CONFIG_CODE" envDefault:"m"`
	Keywords []string `env:"TEST_CONFIG_KEYWORDS" envSeparator:","`
	Status   int      `env:"TEST_CONFIG_STATUS" envDefault:"302"`
}

type cachedConfig struct {
	Value string `env:"TEST_CONFIG_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Required string `env:"TEST_CONFIG_REQUIRED,required"`
}

type fileConfig struct {
	Code  string `env:"TEST_FILE_CODE" envDefault:"m"`
	Other string `env:"TEST_FILE_OTHER"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_CONFIG_CODE", "mobile")
	t.Setenv("TEST_CONFIG_KEYWORDS", "kiosk,fridge")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "mobile", cfg.Code)
	assert.Equal(t, []string{"kiosk", "fridge"}, cfg.Keywords)
	assert.Equal(t, 302, cfg.Status)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_CONFIG_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CONFIG_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", first.Value)
	assert.Equal(t, "first", second.Value)
}

func TestLoad_Errors(t *testing.T) {
	require.NoError(t, os.Unsetenv("TEST_CONFIG_REQUIRED"))

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilPointer)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.env")
	local := filepath.Join(dir, "local.env")
	require.NoError(t, os.WriteFile(base, []byte("TEST_FILE_CODE=mob\nTEST_FILE_OTHER=base\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("TEST_FILE_OTHER=local\n"), 0o600))

	var cfg fileConfig
	require.NoError(t, config.LoadFiles(&cfg, base, local))
	assert.Equal(t, "mob", cfg.Code)
	assert.Equal(t, "local", cfg.Other)

	_, set := os.LookupEnv("TEST_FILE_OTHER")
	assert.False(t, set)

	assert.ErrorIs(t, config.LoadFiles(&cfg, filepath.Join(dir, "missing.env")), config.ErrReadingFile)
}
