package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "LOG_TO_FILE", "DATA_DIR", "TICK_INTERVAL"} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Empty(t, cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.True(t, cfg.LogToFile)
		assert.Empty(t, cfg.DataDir)
		assert.Equal(t, time.Second, cfg.TickInterval)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("reads custom values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("LOG_TO_FILE", "false")
		t.Setenv("DATA_DIR", "/tmp/pomodoro")
		t.Setenv("TICK_INTERVAL", "250ms")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.False(t, cfg.LogToFile)
		assert.Equal(t, "/tmp/pomodoro", cfg.DataDir)
		assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("rejects malformed tick interval", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("TICK_INTERVAL", "soon")

		_, err := Load()

		assert.ErrorContains(t, err, "TICK_INTERVAL")
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		LogLevel:     "info",
		LogFormat:    "text",
		Environment:  "dev",
		TickInterval: time.Second,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown level", func(c *Config) { c.LogLevel = "verbose" }},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }},
		{"unknown environment", func(c *Config) { c.Environment = "qa" }},
		{"tick too fast", func(c *Config) { c.TickInterval = time.Millisecond }},
		{"tick too slow", func(c *Config) { c.TickInterval = time.Minute }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
