package model

import "github.com/shopspring/decimal"

const (
	// Rows - символов на барабане (и линий на поле)
	Rows = 3
	// Cols - барабанов (и символов в линии)
	Cols = 3
)

// Reel - один барабан сверху вниз
type Reel [Rows]Symbol

// Board - игровое поле по барабанам: Board[reel][row]
type Board [Cols]Reel

// Line - одна горизонтальная линия слева направо
type Line [Cols]Symbol

// Lines - игровое поле по линиям: Lines[row][reel]
type Lines [Rows]Line

type LineSpin struct {
	Bet   decimal.Decimal // Ставка на одну линию
	Lines int             // На сколько линий ставим (1-3)
}

type SpinResult struct {
	Board       Board
	Lines       Lines
	LineWins    []LineWin
	TotalPayout decimal.Decimal
}

type LineWin struct {
	Line   int // 1-3
	Symbol Symbol
	Payout decimal.Decimal
}
