package model

// Symbol - символ на барабане
type Symbol string

const (
	SymbolA Symbol = "A"
	SymbolB Symbol = "B"
	SymbolC Symbol = "C"
	SymbolD Symbol = "D"
)

// AllSymbols - фиксированный набор символов, от самого редкого к самому частому.
// Порядок важен: по нему собирается пул барабана, поэтому при одинаковом seed
// результаты повторяются.
func AllSymbols() []Symbol {
	return []Symbol{SymbolA, SymbolB, SymbolC, SymbolD}
}

// Valid - входит ли символ в фиксированный набор
func (s Symbol) Valid() bool {
	switch s {
	case SymbolA, SymbolB, SymbolC, SymbolD:
		return true
	}
	return false
}

func (s Symbol) String() string {
	return string(s)
}

// DefaultSymbolCounts - сколько копий каждого символа лежит в пуле одного барабана
func DefaultSymbolCounts() map[Symbol]int {
	return map[Symbol]int{
		SymbolA: 2,
		SymbolB: 4,
		SymbolC: 6,
		SymbolD: 8,
	}
}

// DefaultSymbolValues - множитель выплаты за полную линию из одного символа
func DefaultSymbolValues() map[Symbol]int {
	return map[Symbol]int{
		SymbolA: 5,
		SymbolB: 4,
		SymbolC: 3,
		SymbolD: 2,
	}
}
