// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds everything the process reads from the environment.
type Config struct {
	MongoURI    string
	Database    string
	Collection  string
	Port        int
	GinMode     string
	SeedOnStart bool
}

// Address returns the HTTP listen address.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MongoURI, validation.Required),
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.Collection, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.GinMode, validation.In("debug", "release", "test")),
	)
}

// Load reads the configuration from the environment, applying local
// defaults, and validates the result.
func Load() (*Config, error) {
	port, err := strconv.Atoi(envOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("config: PORT must be an integer: %w", err)
	}

	cfg := &Config{
		MongoURI:    envOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		Database:    envOrDefault("MONGODB_DATABASE", "news"),
		Collection:  envOrDefault("MONGODB_COLLECTION", "articles"),
		Port:        port,
		GinMode:     envOrDefault("GIN_MODE", "debug"),
		SeedOnStart: envOrDefault("SEED_ON_START", "true") == "true",
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
