package config

import (
	"slot_machine/internal/model"

	"github.com/joho/godotenv"
)

// Load - подгружает переменные окружения из .env файла
func Load(path string) error {
	return godotenv.Load(path)
}

// MachineConfig - таблица символов автомата.
// Геттеры возвращают копии, конфиг после загрузки не меняется.
type MachineConfig interface {
	SymbolCounts() map[model.Symbol]int
	SymbolValues() map[model.Symbol]int
}

type GameConfig interface {
	Seed() uint64
	MachinePath() string
}

type LogConfig interface {
	Level() string
	Dir() string
	File() string
	Console() bool
}
