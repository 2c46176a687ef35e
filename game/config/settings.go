package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/wricardo/mcp-training/slide2048/game/service"
)

// DefaultMaxBulkMoves caps how many moves a single bulk request may run.
const DefaultMaxBulkMoves = service.DefaultMaxBulkMoves

// Settings holds server tuning read from the environment.
type Settings struct {
	SessionTTL      time.Duration `env:"SLIDE2048_SESSION_TTL"      envDefault:"24h"`
	CleanupInterval time.Duration `env:"SLIDE2048_CLEANUP_INTERVAL" envDefault:"1h"`
	MaxBulkMoves    int           `env:"SLIDE2048_MAX_BULK_MOVES"   envDefault:"100"`
	DefaultPreset   string        `env:"SLIDE2048_DEFAULT_PRESET"   envDefault:"classic"`
}

// DefaultSettings returns the values used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		SessionTTL:      24 * time.Hour,
		CleanupInterval: time.Hour,
		MaxBulkMoves:    DefaultMaxBulkMoves,
		DefaultPreset:   "classic",
	}
}

// LoadSettings parses Settings from environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse env: %w", err)
	}
	if s.MaxBulkMoves <= 0 {
		s.MaxBulkMoves = DefaultMaxBulkMoves
	}
	if s.CleanupInterval <= 0 {
		s.CleanupInterval = time.Hour
	}
	return s, nil
}
