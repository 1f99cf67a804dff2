package line

import (
	"fmt"
	"maps"

	"slot_machine/internal/model"

	"github.com/shopspring/decimal"
)

// PayoutEvaluator - считает выигрыш по линиям
type PayoutEvaluator struct {
	values map[model.Symbol]int
}

// NewPayoutEvaluator - values копируется
func NewPayoutEvaluator(values map[model.Symbol]int) *PayoutEvaluator {
	return &PayoutEvaluator{values: maps.Clone(values)}
}

// EvaluateLines выполняет оценку выигрышных линий.
// Смотрим только первые count линий: за линии без ставки не платим, даже если они совпали.
func (e *PayoutEvaluator) EvaluateLines(lines model.Lines, bet decimal.Decimal, count int) []model.LineWin {
	if count < 1 || count > model.Rows {
		panic(fmt.Sprintf("line count %d is out of range 1-%d", count, model.Rows))
	}

	var wins []model.LineWin
	for i := 0; i < count; i++ {
		symbol, ok := sameSymbol(lines[i])
		if !ok {
			continue
		}
		wins = append(wins, model.LineWin{
			Line:   i + 1,
			Symbol: symbol,
			Payout: bet.Mul(decimal.NewFromInt(int64(e.values[symbol]))),
		})
	}
	return wins
}

// Winnings - сумма выигрыша по всем линиям со ставкой
func (e *PayoutEvaluator) Winnings(lines model.Lines, bet decimal.Decimal, count int) decimal.Decimal {
	return TotalPayout(e.EvaluateLines(lines, bet, count))
}

// TotalPayout - сумма выплат по выигрышным линиям
func TotalPayout(wins []model.LineWin) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wins {
		total = total.Add(w.Payout)
	}
	return total
}

// sameSymbol - все символы линии одинаковые
func sameSymbol(line model.Line) (model.Symbol, bool) {
	first := line[0]
	for _, sym := range line[1:] {
		if sym != first {
			return "", false
		}
	}
	return first, true
}
