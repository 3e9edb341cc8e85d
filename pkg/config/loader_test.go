package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webgrant/pkg/config"
)

// Env-dependent tests share process environment, so no t.Parallel here.

type cacheEnv struct {
	Enabled bool          `env:"TEST_CACHE_ENABLED" envDefault:"true"`
	MaxSize int           `env:"TEST_CACHE_MAX_SIZE" envDefault:"1000"`
	TTL     time.Duration `env:"TEST_CACHE_TTL" envDefault:"10m"`
}

type overrideEnv struct {
	MaxSize int `env:"TEST_OVERRIDE_MAX_SIZE" envDefault:"5"`
}

type badEnv struct {
	MaxSize int `env:"TEST_BAD_MAX_SIZE"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg cacheEnv
	require.NoError(t, config.Load(&cfg))

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.MaxSize)
	assert.Equal(t, 10*time.Minute, cfg.TTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_OVERRIDE_MAX_SIZE", "42")

	var cfg overrideEnv
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 42, cfg.MaxSize)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("TEST_OVERRIDE_MAX_SIZE", "42")

	var first overrideEnv
	require.NoError(t, config.Load(&first))

	// A changed environment must not leak into an already-loaded type.
	t.Setenv("TEST_OVERRIDE_MAX_SIZE", "7")
	var second overrideEnv
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first.MaxSize, second.MaxSize)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("TEST_BAD_MAX_SIZE", "not-a-number")

	var cfg badEnv
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[cacheEnv](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoadPanics(t *testing.T) {
	t.Setenv("TEST_BAD_MAX_SIZE", "still-not-a-number")

	type badEnvMust struct {
		MaxSize int `env:"TEST_BAD_MAX_SIZE"`
	}
	assert.Panics(t, func() {
		var cfg badEnvMust
		config.MustLoad(&cfg)
	})
}
