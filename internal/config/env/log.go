package env

import (
	"fmt"

	"slot_machine/internal/config"

	"github.com/caarlos0/env/v11"
)

type logConfig struct {
	LogLevel   string `env:"SLOT_LOG_LEVEL" envDefault:"info"`
	LogDir     string `env:"SLOT_LOG_DIR" envDefault:"logs"`
	LogFile    string `env:"SLOT_LOG_FILE" envDefault:"slot_machine"`
	LogConsole bool   `env:"SLOT_LOG_CONSOLE" envDefault:"false"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse log env: %w", err)
	}
	return &cfg, nil
}

func (l *logConfig) Level() string {
	return l.LogLevel
}

func (l *logConfig) Dir() string {
	return l.LogDir
}

func (l *logConfig) File() string {
	return l.LogFile
}

func (l *logConfig) Console() bool {
	return l.LogConsole
}
