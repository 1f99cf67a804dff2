package model

import "github.com/shopspring/decimal"

// Состояние игровой сессии
type SessionState struct {
	TotalSpins  int             // Сколько всего спинов сделано
	TotalBet    decimal.Decimal // Сумма всех ставок
	TotalPayout decimal.Decimal // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна для анализа RTP
}

// Результат спина для окна
type SpinResult struct {
	Bet    decimal.Decimal
	Payout decimal.Decimal
}
