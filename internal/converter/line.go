package converter

import (
	"fmt"
	"strings"

	"slot_machine/internal/model"

	"github.com/shopspring/decimal"
)

// lineSeparator - разделитель символов в строке поля
const lineSeparator = " | "

// ToGridLines - поле по линиям в строки вида "A | B | C"
func ToGridLines(lines model.Lines) []string {
	result := make([]string, len(lines))
	for i, l := range lines {
		result[i] = ToLineString(l)
	}
	return result
}

func ToLineString(line model.Line) string {
	symbols := make([]string, len(line))
	for i, sym := range line {
		symbols[i] = sym.String()
	}
	return strings.Join(symbols, lineSeparator)
}

// ToAmount - сумма для вывода игроку, без лишних нулей: 100, 12.5
func ToAmount(amount decimal.Decimal) string {
	return "$" + amount.String()
}

// ToLineWins - описание выигрышных линий для вывода
func ToLineWins(lineWins []model.LineWin) []string {
	result := make([]string, len(lineWins))
	for i, w := range lineWins {
		result[i] = fmt.Sprintf("Line %d: %s x%d pays %s", w.Line, w.Symbol, model.Cols, ToAmount(w.Payout))
	}
	return result
}

// ToSessionSummary - итог сессии одной строкой
func ToSessionSummary(stats model.SessionStats) string {
	return fmt.Sprintf("Session: %d spins, wagered %s, won %s",
		stats.TotalSpins, ToAmount(stats.TotalBet), ToAmount(stats.TotalPayout))
}
