package repository

import (
	"context"

	"slot_machine/internal/model"

	"github.com/shopspring/decimal"
)

type WalletRepository interface {
	GetBalance(ctx context.Context) (decimal.Decimal, error)
	UpdateBalance(ctx context.Context, amount decimal.Decimal) error
}

type StatsRepository interface {
	UpdateState(bet, payout decimal.Decimal)
	SessionState() model.SessionStats
}
