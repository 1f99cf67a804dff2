package env

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"slot_machine/internal/config"
	"slot_machine/internal/model"

	"gopkg.in/yaml.v3"
)

// Формат config.yaml:
//
//	symbols:
//	  - symbol: A
//	    count: 2
//	    value: 5
type machineFile struct {
	Symbols []symbolEntry `yaml:"symbols"`
}

type symbolEntry struct {
	Symbol string `yaml:"symbol"`
	Count  int    `yaml:"count"`
	Value  int    `yaml:"value"`
}

type machineConfig struct {
	counts map[model.Symbol]int
	values map[model.Symbol]int
}

// NewDefaultMachineConfig - фиксированная таблица символов
func NewDefaultMachineConfig() config.MachineConfig {
	return &machineConfig{
		counts: model.DefaultSymbolCounts(),
		values: model.DefaultSymbolValues(),
	}
}

// NewMachineConfigFromYAML - читает таблицу символов из файла.
// Если файла нет, возвращает фиксированную таблицу.
func NewMachineConfigFromYAML(path string) (config.MachineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultMachineConfig(), nil
		}
		return nil, fmt.Errorf("read machine config %s: %w", path, err)
	}
	return parseMachineConfig(data)
}

func parseMachineConfig(data []byte) (config.MachineConfig, error) {
	var file machineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode machine config: %w", err)
	}

	cfg := &machineConfig{
		counts: make(map[model.Symbol]int, len(file.Symbols)),
		values: make(map[model.Symbol]int, len(file.Symbols)),
	}
	for _, e := range file.Symbols {
		sym := model.Symbol(e.Symbol)
		if !sym.Valid() {
			return nil, fmt.Errorf("unknown symbol %q", e.Symbol)
		}
		if _, ok := cfg.counts[sym]; ok {
			return nil, fmt.Errorf("duplicate symbol %s", sym)
		}
		if e.Count <= 0 || e.Value <= 0 {
			return nil, fmt.Errorf("symbol %s: count and value must be positive", sym)
		}
		cfg.counts[sym] = e.Count
		cfg.values[sym] = e.Value
	}

	if err := validateTable(cfg.counts, cfg.values); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateTable - проверяет инварианты таблицы:
// все символы на месте, пула хватает на барабан, редкие платят больше
func validateTable(counts, values map[model.Symbol]int) error {
	total := 0
	for _, sym := range model.AllSymbols() {
		if _, ok := counts[sym]; !ok {
			return fmt.Errorf("symbol %s is missing", sym)
		}
		total += counts[sym]
	}
	if total < model.Rows {
		return fmt.Errorf("pool of %d symbols is smaller than reel height %d", total, model.Rows)
	}

	for _, a := range model.AllSymbols() {
		for _, b := range model.AllSymbols() {
			if counts[a] < counts[b] && values[a] <= values[b] {
				return fmt.Errorf("symbol %s is rarer than %s but does not pay more", a, b)
			}
		}
	}
	return nil
}

func (m *machineConfig) SymbolCounts() map[model.Symbol]int {
	return maps.Clone(m.counts)
}

func (m *machineConfig) SymbolValues() map[model.Symbol]int {
	return maps.Clone(m.values)
}
