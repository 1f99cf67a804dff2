package converter

import (
	"testing"

	"slot_machine/internal/model"

	"github.com/shopspring/decimal"
)

func TestToGridLines(t *testing.T) {
	lines := model.Lines{
		{model.SymbolA, model.SymbolB, model.SymbolC},
		{model.SymbolD, model.SymbolD, model.SymbolD},
		{model.SymbolC, model.SymbolA, model.SymbolB},
	}
	want := []string{"A | B | C", "D | D | D", "C | A | B"}

	got := ToGridLines(lines)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestToAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100", "$100"},
		{"12.50", "$12.5"},
		{"0", "$0"},
		{"0.3", "$0.3"},
	}
	for _, tt := range tests {
		if got := ToAmount(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("ToAmount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToLineWins(t *testing.T) {
	wins := []model.LineWin{
		{Line: 2, Symbol: model.SymbolB, Payout: decimal.NewFromInt(20)},
	}
	got := ToLineWins(wins)
	if len(got) != 1 || got[0] != "Line 2: B x3 pays $20" {
		t.Fatalf("ToLineWins() = %q", got)
	}
}

func TestToSessionSummary(t *testing.T) {
	stats := model.SessionStats{
		TotalSpins:  3,
		TotalBet:    decimal.NewFromInt(30),
		TotalPayout: decimal.RequireFromString("12.5"),
	}
	want := "Session: 3 spins, wagered $30, won $12.5"
	if got := ToSessionSummary(stats); got != want {
		t.Fatalf("ToSessionSummary() = %q, want %q", got, want)
	}
}
