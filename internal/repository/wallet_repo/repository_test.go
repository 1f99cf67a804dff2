package wallet_repo

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestWallet(t *testing.T) {
	ctx := context.Background()
	r := NewWalletRepository()

	balance, err := r.GetBalance(ctx)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if !balance.IsZero() {
		t.Fatalf("new wallet balance = %s, want 0", balance)
	}

	if err := r.UpdateBalance(ctx, decimal.RequireFromString("12.5")); err != nil {
		t.Fatalf("UpdateBalance: %v", err)
	}
	balance, _ = r.GetBalance(ctx)
	if balance.String() != "12.5" {
		t.Fatalf("balance = %s, want 12.5", balance)
	}

	if err := r.UpdateBalance(ctx, decimal.Zero); err != nil {
		t.Fatalf("zero balance must be allowed: %v", err)
	}
}

func TestWallet_RejectsNegative(t *testing.T) {
	ctx := context.Background()
	r := NewWalletRepository()
	_ = r.UpdateBalance(ctx, decimal.NewFromInt(5))

	err := r.UpdateBalance(ctx, decimal.NewFromInt(-1))
	if !errors.Is(err, ErrNegativeBalance) {
		t.Fatalf("error = %v, want ErrNegativeBalance", err)
	}
	balance, _ := r.GetBalance(ctx)
	if !balance.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("balance changed to %s after rejected update", balance)
	}
}

func TestWallet_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewWalletRepository()

	if _, err := r.GetBalance(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("GetBalance error = %v, want context.Canceled", err)
	}
	if err := r.UpdateBalance(ctx, decimal.NewFromInt(1)); !errors.Is(err, context.Canceled) {
		t.Errorf("UpdateBalance error = %v, want context.Canceled", err)
	}
}
