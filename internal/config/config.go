package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the desktop app
type Config struct {
	// LogLevel is empty unless LOG_LEVEL is set; the environment preset applies then.
	LogLevel     string        `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat    string        `validate:"oneof=text json"`
	Environment  string        `validate:"oneof=dev staging prod test"`
	LogToFile    bool
	DataDir      string        `validate:"omitempty,max=4096"`
	TickInterval time.Duration `validate:"gte=100ms,lte=5s"`
}

var validate = validator.New()

// Load reads the configuration from the environment, falling back to a .env
// file in the working directory when one exists.
func Load() (*Config, error) {
	// Real env vars win; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: strings.ToLower(getEnv("ENVIRONMENT", DefaultEnvironment)),
		DataDir:     getEnv("DATA_DIR", ""),
	}

	logToFile, err := strconv.ParseBool(getEnv("LOG_TO_FILE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_TO_FILE value: %w", err)
	}
	cfg.LogToFile = logToFile

	tick, err := time.ParseDuration(getEnv("TICK_INTERVAL", DefaultTickInterval.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid TICK_INTERVAL value: %w", err)
	}
	cfg.TickInterval = tick

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment reports whether verbose developer defaults apply.
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment
}

// getEnv retrieves a non-empty environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
