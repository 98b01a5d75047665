// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings.
type Config struct {
	Port        int           `env:"MUSHLAND_PORT" envDefault:"8080"`
	PublicHost  string        `env:"MUSHLAND_PUBLIC_HOST"` // host used in QR join links; request host when empty
	MaxSessions int           `env:"MUSHLAND_MAX_SESSIONS" envDefault:"64"`
	SessionIdle time.Duration `env:"MUSHLAND_SESSION_IDLE" envDefault:"10m"` // clientless sessions older than this are evicted at the limit; 0 disables
	Seed        uint64        `env:"MUSHLAND_SEED"`                           // fixed shuffle seed for new sessions; random when zero
	QRSize      int           `env:"MUSHLAND_QR_SIZE" envDefault:"256"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}
