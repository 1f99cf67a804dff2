package stats_repo

import (
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	repoModel "slot_machine/internal/repository/stats_repo/model"

	"github.com/shopspring/decimal"
)

// defaultWindowSize - сколько последних спинов учитываем в RTP окна
const defaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// Реализация репозитория для хранения статистики сессии
type StatsRepo struct {
	state repoModel.SessionState
}

// NewStatsRepository Конструктор для создания нового репозитория с начальным состоянием
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.SessionState{
			TotalBet:    decimal.Zero,
			TotalPayout: decimal.Zero,
			SpinWindow:  make([]repoModel.SpinResult, 0, windowSize),
			WindowSize:  windowSize,
		},
	}
}

// SessionState Получение текущей статистики сессии
func (r *StatsRepo) SessionState() model.SessionStats {
	return model.SessionStats{
		TotalSpins:  r.state.TotalSpins,
		TotalBet:    r.state.TotalBet,
		TotalPayout: r.state.TotalPayout,
		CurrentRTP:  r.state.CurrentRTP,
		WindowRTP:   r.state.WindowRTP,
	}
}

// UpdateState Обновление статистики после спина
func (r *StatsRepo) UpdateState(bet, payout decimal.Decimal) {
	r.state.TotalSpins++
	r.state.TotalBet = r.state.TotalBet.Add(bet)
	r.state.TotalPayout = r.state.TotalPayout.Add(payout)
	r.state.CurrentRTP = rtp(r.state.TotalBet, r.state.TotalPayout)

	// Добавляем спин в окно
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Bet:    bet,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	windowBet, windowPayout := decimal.Zero, decimal.Zero
	for _, spin := range r.state.SpinWindow {
		windowBet = windowBet.Add(spin.Bet)
		windowPayout = windowPayout.Add(spin.Payout)
	}
	r.state.WindowRTP = rtp(windowBet, windowPayout)
}

func rtp(bet, payout decimal.Decimal) float64 {
	if !bet.IsPositive() {
		return 0
	}
	return payout.Div(bet).Mul(hundred).InexactFloat64()
}
