package wallet_repo

import (
	"context"
	"errors"

	"slot_machine/internal/repository"

	"github.com/shopspring/decimal"
)

var ErrNegativeBalance = errors.New("balance can not be negative")

// repo - кошелек игрока на время одной сессии, между запусками не сохраняется
type repo struct {
	balance decimal.Decimal
}

func NewWalletRepository() repository.WalletRepository {
	return &repo{
		balance: decimal.Zero,
	}
}

// GetBalance - получение текущего баланса
func (r *repo) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	return r.balance, nil
}

// UpdateBalance - обновляет баланс.
// Принимает новую сумму баланса, отрицательный баланс не допускается
func (r *repo) UpdateBalance(ctx context.Context, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount.IsNegative() {
		return ErrNegativeBalance
	}
	r.balance = amount
	return nil
}
