package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionforge/sessionkit/config"
)

type testConfig struct {
	Name     string        `env:"TEST_APP_NAME" envDefault:"sessionkit"`
	Port     int           `env:"TEST_APP_PORT" envDefault:"8080"`
	Debug    bool          `env:"TEST_APP_DEBUG" envDefault:"false"`
	Timeout  time.Duration `env:"TEST_APP_TIMEOUT" envDefault:"30s"`
	Required string        `env:"TEST_APP_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("reads values from the environment", func(t *testing.T) {
		t.Setenv("TEST_APP_NAME", "custom")
		t.Setenv("TEST_APP_PORT", "9090")
		t.Setenv("TEST_APP_DEBUG", "true")
		t.Setenv("TEST_APP_TIMEOUT", "5s")
		t.Setenv("TEST_APP_REQUIRED", "present")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "custom", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
		assert.True(t, cfg.Debug)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("applies defaults when unset", func(t *testing.T) {
		t.Setenv("TEST_APP_REQUIRED", "present")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "sessionkit", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.False(t, cfg.Debug)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("unparsable value fails", func(t *testing.T) {
		t.Setenv("TEST_APP_PORT", "not-a-number")
		t.Setenv("TEST_APP_REQUIRED", "present")

		var cfg testConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("returns on success", func(t *testing.T) {
		t.Setenv("TEST_APP_REQUIRED", "present")

		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
