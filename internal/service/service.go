package service

import (
	"context"

	"slot_machine/internal/model"

	"github.com/shopspring/decimal"
)

type LineService interface {
	SpinOnce(spinReq model.LineSpin) *model.SpinResult
}

type RoundService interface {
	Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
	Spin(ctx context.Context, spinReq model.LineSpin) (*model.RoundResult, error)
	Summary() model.SessionStats
}
