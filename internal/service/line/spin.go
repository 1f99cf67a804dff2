package line

import (
	"slot_machine/internal/model"
)

// SpinOnce выполняет один спин: поле по барабанам, перевод в линии, подсчет выигрыша.
// Баланс здесь не трогаем, этим занимается раунд.
func (s *serv) SpinOnce(spinReq model.LineSpin) *model.SpinResult {
	// Генерация игрового поля
	board := s.generator.GenerateBoard()
	lines := Transpose(board)

	// line wins
	lineWins := s.evaluator.EvaluateLines(lines, spinReq.Bet, spinReq.Lines)

	return &model.SpinResult{
		Board:       board,
		Lines:       lines,
		LineWins:    lineWins,
		TotalPayout: TotalPayout(lineWins),
	}
}
