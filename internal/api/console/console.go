package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	dto "slot_machine/internal/api/dto/console"
	"slot_machine/internal/converter"
	"slot_machine/internal/model"
	"slot_machine/internal/service"
	"slot_machine/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// errInputClosed - игрок закрыл ввод (EOF), сессия заканчивается штатно
var errInputClosed = errors.New("input closed")

type HandlerDeps struct {
	Serv   service.RoundService
	In     io.Reader
	Out    io.Writer
	Logger *zap.Logger
}

type Handler struct {
	serv   service.RoundService
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		serv:   deps.Serv,
		in:     bufio.NewScanner(deps.In),
		out:    deps.Out,
		logger: logger,
	}
}

// Run проводит игровую сессию: депозит, затем раунды до отказа игрока или пустого баланса.
// Конец ввода завершает сессию без ошибки. Итог сессии пишется в лог.
func (h *Handler) Run(ctx context.Context) error {
	err := h.play(ctx)
	if errors.Is(err, errInputClosed) {
		h.logger.Info("input closed, ending session")
		h.println("")
		err = nil
	}
	if err != nil {
		return err
	}

	// Итог сессии только в лог
	stats := h.serv.Summary()
	h.logger.Info("session finished",
		zap.String("summary", converter.ToSessionSummary(stats)),
		zap.Int("spins", stats.TotalSpins),
		zap.Stringer("total_bet", stats.TotalBet),
		zap.Stringer("total_payout", stats.TotalPayout),
		zap.Float64("rtp", stats.CurrentRTP),
		zap.Float64("window_rtp", stats.WindowRTP),
	)
	return nil
}

func (h *Handler) play(ctx context.Context) error {
	deposit, err := prompt(h, dto.DepositPrompt, dto.DepositInvalid, validator.ParseDeposit)
	if err != nil {
		return err
	}
	if _, err := h.serv.Deposit(ctx, deposit); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		balance, err := h.serv.Balance(ctx)
		if err != nil {
			return err
		}
		h.printf(dto.BalanceFormat, converter.ToAmount(balance))

		lines, err := prompt(h, dto.LinesPrompt, dto.LinesInvalid, validator.ParseLines)
		if err != nil {
			return err
		}

		// Ставку проверяем против баланса этого раунда
		bet, err := prompt(h, dto.BetPrompt, dto.BetInvalid, func(input string) (decimal.Decimal, error) {
			return validator.ParseBet(input, balance, lines)
		})
		if err != nil {
			return err
		}

		res, err := h.serv.Spin(ctx, model.LineSpin{Bet: bet, Lines: lines})
		if err != nil {
			return fmt.Errorf("spin: %w", err)
		}

		for _, l := range converter.ToGridLines(res.Spin.Lines) {
			h.println(l)
		}
		h.printf(dto.WinningsFormat, converter.ToAmount(res.Spin.TotalPayout))

		if !res.Balance.IsPositive() {
			h.println(dto.OutOfMoney)
			return nil
		}

		answer, err := h.readLine(dto.ReplayPrompt)
		if err != nil {
			return err
		}
		if strings.TrimSpace(answer) != dto.ReplayYes {
			return nil
		}
	}
}

// prompt - спрашивает, пока parse не примет ввод
func prompt[T any](h *Handler, message, invalid string, parse func(string) (T, error)) (T, error) {
	for {
		input, err := h.readLine(message)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(input)
		if err == nil {
			return v, nil
		}
		h.logger.Debug("invalid input", zap.String("prompt", message), zap.Error(err))
		h.println(invalid)
	}
}

func (h *Handler) readLine(message string) (string, error) {
	_, _ = fmt.Fprint(h.out, message)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return h.in.Text(), nil
}

func (h *Handler) println(s string) {
	_, _ = fmt.Fprintln(h.out, s)
}

func (h *Handler) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(h.out, format+"\n", args...)
}
