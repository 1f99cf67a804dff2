package env

import (
	"fmt"

	"slot_machine/internal/config"

	"github.com/caarlos0/env/v11"
)

type gameConfig struct {
	SeedValue uint64 `env:"SLOT_SEED" envDefault:"0"`
	Path      string `env:"SLOT_CONFIG_PATH" envDefault:"config.yaml"`
}

// NewGameConfig - настройки сессии из окружения.
// SLOT_SEED=0 значит случайный seed при каждом запуске.
func NewGameConfig() (config.GameConfig, error) {
	var cfg gameConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse game env: %w", err)
	}
	if cfg.Path == "" {
		cfg.Path = "config.yaml"
	}
	return &cfg, nil
}

func (g *gameConfig) Seed() uint64 {
	return g.SeedValue
}

func (g *gameConfig) MachinePath() string {
	return g.Path
}
