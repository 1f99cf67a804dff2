package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"slot_machine/internal/model"

	"github.com/shopspring/decimal"
)

// Границы вводимой суммы: знаков после точки и порядок
const (
	maxScale    = 8
	maxExponent = 12
)

var maxAmount = decimal.New(1, maxExponent)

var (
	ErrInvalidDeposit = errors.New("invalid deposit amount")
	ErrInvalidLines   = errors.New("invalid number of lines")
	ErrInvalidBet     = errors.New("invalid bet")
)

// CheckDeposit - депозит должен быть больше нуля
func CheckDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s is not positive", ErrInvalidDeposit, amount)
	}
	return nil
}

// CheckLines - количество линий от 1 до model.Rows
func CheckLines(lines int) error {
	if lines < 1 || lines > model.Rows {
		return fmt.Errorf("%w: %d is out of range 1-%d", ErrInvalidLines, lines, model.Rows)
	}
	return nil
}

// CheckBet - ставка на линию положительна и ставка на все линии не больше текущего баланса
func CheckBet(bet, balance decimal.Decimal, lines int) error {
	if err := CheckLines(lines); err != nil {
		return err
	}
	if !bet.IsPositive() {
		return fmt.Errorf("%w: %s is not positive", ErrInvalidBet, bet)
	}
	if bet.Mul(decimal.NewFromInt(int64(lines))).GreaterThan(balance) {
		return fmt.Errorf("%w: %s x %d lines exceeds balance %s", ErrInvalidBet, bet, lines, balance)
	}
	return nil
}

// ParseDeposit - разбирает ввод игрока и проверяет депозит
func ParseDeposit(input string) (decimal.Decimal, error) {
	amount, err := parseAmount(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidDeposit, err)
	}
	return amount, CheckDeposit(amount)
}

// ParseLines - разбирает ввод игрока и проверяет количество линий
func ParseLines(input string) (int, error) {
	lines, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidLines, input)
	}
	return lines, CheckLines(lines)
}

// ParseBet - разбирает ввод игрока и проверяет ставку против текущего баланса
func ParseBet(input string, balance decimal.Decimal, lines int) (decimal.Decimal, error) {
	bet, err := parseAmount(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidBet, err)
	}
	return bet, CheckBet(bet, balance, lines)
}

func parseAmount(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, errors.New("empty input")
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", input)
	}
	// Порядок проверяем до сравнения с maxAmount
	exp := amount.Exponent()
	if exp < -maxScale || exp > maxExponent {
		return decimal.Zero, fmt.Errorf("%q is out of range", input)
	}
	if amount.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%q exceeds %s", input, maxAmount)
	}
	return amount, nil
}
