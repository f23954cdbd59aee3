package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/pkg/config"
)

type fileConfig struct {
	Name   string   `env:"DONORKIT_TEST_NAME"`
	MinAge int      `env:"DONORKIT_TEST_MIN_AGE" envDefault:"18"`
	Langs  []string `env:"DONORKIT_TEST_LANGS" envSeparator:","`
}

type defaultsConfig struct {
	Addr   string `env:"DONORKIT_TEST_ADDR" envDefault:":8080"`
	MaxAge int    `env:"DONORKIT_TEST_MAX_AGE" envDefault:"65"`
}

type requiredConfig struct {
	Secret string `env:"DONORKIT_TEST_REQUIRED,required"`
}

func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadEnv(t *testing.T) {
	unset(t, "DONORKIT_TEST_NAME", "DONORKIT_TEST_MIN_AGE", "DONORKIT_TEST_LANGS")
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test", "testdata/.env.override"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "overridden", cfg.Name)
	assert.Equal(t, 17, cfg.MinAge)
	assert.Equal(t, []string{"en", "es"}, cfg.Langs)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	assert.NoError(t, config.LoadEnv())
}

func TestLoad_DefaultsAndCache(t *testing.T) {
	unset(t, "DONORKIT_TEST_ADDR", "DONORKIT_TEST_MAX_AGE")
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 65, cfg.MaxAge)

	t.Setenv("DONORKIT_TEST_ADDR", ":9090")
	var cached defaultsConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, ":8080", cached.Addr, "second load is served from cache")

	config.ResetCache()
	var fresh defaultsConfig
	require.NoError(t, config.Load(&fresh))
	assert.Equal(t, ":9090", fresh.Addr)
}

func TestLoad_Required(t *testing.T) {
	unset(t, "DONORKIT_TEST_REQUIRED")
	config.ResetCache()

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("DONORKIT_TEST_REQUIRED", "s3cret")
	require.NoError(t, config.Load(&cfg), "failed parses are not cached")
	assert.Equal(t, "s3cret", cfg.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}
