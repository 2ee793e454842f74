package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/yigit/campus-survey/internal/pkg/helpers"
)

// loadFromEnv overrides configuration with environment variables declared in env tags.
// Variables that are not set leave the file or default value untouched.
func loadFromEnv(config *Config) error {
	return env.Parse(config)
}

// ConnectTimeout returns the database connect timeout, falling back to 10s.
func (c *Config) ConnectTimeout() time.Duration {
	return helpers.ParseDuration(c.Database.ConnectTimeout, 10*time.Second)
}

// ConnMaxLifetime returns the pooled connection lifetime, falling back to 1h.
func (c *Config) ConnMaxLifetime() time.Duration {
	return helpers.ParseDuration(c.Database.ConnMaxLifetime, time.Hour)
}
