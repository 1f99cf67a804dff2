package round

import (
	"context"
	"fmt"

	"slot_machine/internal/converter"
	"slot_machine/internal/model"
	"slot_machine/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Deposit - пополнение баланса. Возвращает баланс после пополнения
func (s *serv) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validator.CheckDeposit(amount); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.walletRepo.GetBalance(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	balance = balance.Add(amount)
	if err := s.walletRepo.UpdateBalance(ctx, balance); err != nil {
		return decimal.Zero, fmt.Errorf("update balance: %w", err)
	}

	s.logger.Info("deposit",
		zap.Stringer("amount", amount),
		zap.Stringer("balance", balance),
	)
	return balance, nil
}

// Balance - текущий баланс
func (s *serv) Balance(ctx context.Context) (decimal.Decimal, error) {
	balance, err := s.walletRepo.GetBalance(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// Spin выполняет раунд: ставка проверяется против текущего баланса,
// списывается до спина, выигрыш начисляется после
func (s *serv) Spin(ctx context.Context, spinReq model.LineSpin) (*model.RoundResult, error) {
	balance, err := s.walletRepo.GetBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	// Валидация ставки
	if err := validator.CheckBet(spinReq.Bet, balance, spinReq.Lines); err != nil {
		return nil, err
	}

	// Списание ставки, обновление баланса
	wager := spinReq.Bet.Mul(decimal.NewFromInt(int64(spinReq.Lines)))
	balance = balance.Sub(wager)
	if err := s.walletRepo.UpdateBalance(ctx, balance); err != nil {
		return nil, fmt.Errorf("debit wager: %w", err)
	}

	res := s.lineServ.SpinOnce(spinReq)

	// Начисление выигрыша
	balance = balance.Add(res.TotalPayout)
	if err := s.walletRepo.UpdateBalance(ctx, balance); err != nil {
		return nil, fmt.Errorf("credit winnings: %w", err)
	}

	// Обновляем статистику
	s.statsRepo.UpdateState(wager, res.TotalPayout)

	s.logger.Info("spin",
		zap.Stringer("bet", spinReq.Bet),
		zap.Int("lines", spinReq.Lines),
		zap.Stringer("wager", wager),
		zap.Strings("grid", converter.ToGridLines(res.Lines)),
		zap.Strings("line_wins", converter.ToLineWins(res.LineWins)),
		zap.Stringer("payout", res.TotalPayout),
		zap.Stringer("balance", balance),
	)

	return &model.RoundResult{
		Spin:    *res,
		Wager:   wager,
		Balance: balance,
	}, nil
}

// Summary - статистика сессии
func (s *serv) Summary() model.SessionStats {
	return s.statsRepo.SessionState()
}
