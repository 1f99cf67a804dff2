package model

import "github.com/shopspring/decimal"

// RoundResult - итог одного раунда: спин плюс движение баланса
type RoundResult struct {
	Spin    SpinResult
	Wager   decimal.Decimal // Списано перед спином (ставка * линии)
	Balance decimal.Decimal // Баланс после начисления выигрыша
}

// SessionStats - статистика игровой сессии
type SessionStats struct {
	TotalSpins  int
	TotalBet    decimal.Decimal
	TotalPayout decimal.Decimal
	CurrentRTP  float64 // TotalPayout/TotalBet*100
	WindowRTP   float64 // RTP по последним спинам
}
