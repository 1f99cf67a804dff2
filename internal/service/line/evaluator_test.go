package line

import (
	"testing"

	"slot_machine/internal/config/env"
	"slot_machine/internal/model"

	"github.com/shopspring/decimal"
)

const (
	A = model.SymbolA
	B = model.SymbolB
	C = model.SymbolC
	D = model.SymbolD
)

func TestWinnings(t *testing.T) {
	tests := []struct {
		name  string
		lines model.Lines
		bet   int64
		count int
		want  int64
	}{
		{
			name:  "all match on the only line",
			lines: model.Lines{{A, A, A}, {B, C, D}, {D, C, B}},
			bet:   10,
			count: 1,
			want:  50,
		},
		{
			name:  "no match",
			lines: model.Lines{{A, B, C}, {B, C, D}, {D, C, B}},
			bet:   10,
			count: 1,
			want:  0,
		},
		{
			name:  "multi line",
			lines: model.Lines{{B, B, B}, {C, C, C}, {D, A, D}},
			bet:   5,
			count: 3,
			want:  35,
		},
		{
			name:  "unpaid line is ignored",
			lines: model.Lines{{A, B, C}, {D, D, D}, {B, C, A}},
			bet:   10,
			count: 1,
			want:  0,
		},
		{
			name:  "second line paid when bet on",
			lines: model.Lines{{A, B, C}, {D, D, D}, {B, C, A}},
			bet:   10,
			count: 2,
			want:  20,
		},
		{
			name:  "every line wins",
			lines: model.Lines{{A, A, A}, {B, B, B}, {D, D, D}},
			bet:   1,
			count: 3,
			want:  11,
		},
		{
			name:  "two of three is not a win",
			lines: model.Lines{{A, A, B}, {C, D, D}, {D, C, D}},
			bet:   100,
			count: 3,
			want:  0,
		},
	}

	e := NewPayoutEvaluator(model.DefaultSymbolValues())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Winnings(tt.lines, decimal.NewFromInt(tt.bet), tt.count)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Fatalf("Winnings() = %s, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluateLines_ReportsEachWin(t *testing.T) {
	e := NewPayoutEvaluator(model.DefaultSymbolValues())
	lines := model.Lines{{B, B, B}, {C, C, C}, {D, A, D}}

	wins := e.EvaluateLines(lines, decimal.NewFromInt(5), 3)
	want := []model.LineWin{
		{Line: 1, Symbol: B, Payout: decimal.NewFromInt(20)},
		{Line: 2, Symbol: C, Payout: decimal.NewFromInt(15)},
	}
	if len(wins) != len(want) {
		t.Fatalf("got %d wins, want %d", len(wins), len(want))
	}
	for i := range want {
		if wins[i].Line != want[i].Line || wins[i].Symbol != want[i].Symbol || !wins[i].Payout.Equal(want[i].Payout) {
			t.Errorf("win %d = %+v, want %+v", i, wins[i], want[i])
		}
	}
}

func TestEvaluateLines_FractionalBet(t *testing.T) {
	e := NewPayoutEvaluator(model.DefaultSymbolValues())
	lines := model.Lines{{A, A, A}, {B, C, D}, {D, C, B}}

	got := e.Winnings(lines, decimal.RequireFromString("0.1"), 1)
	if got.String() != "0.5" {
		t.Fatalf("Winnings() = %s, want 0.5", got)
	}
}

func TestEvaluateLines_LineCountOutOfRange(t *testing.T) {
	e := NewPayoutEvaluator(model.DefaultSymbolValues())
	var lines model.Lines

	for _, count := range []int{0, 4, -1} {
		mustPanic(t, func() {
			e.EvaluateLines(lines, decimal.NewFromInt(1), count)
		})
	}
}

func TestSpinOnce(t *testing.T) {
	// Каждый барабан: A A B, значит линии A A A / A A A / B B B
	s := NewLineService(env.NewDefaultMachineConfig(), &fixedSource{picks: []int{0}})

	res := s.SpinOnce(model.LineSpin{Bet: decimal.NewFromInt(10), Lines: 3})

	wantLines := model.Lines{{A, A, A}, {A, A, A}, {B, B, B}}
	if res.Lines != wantLines {
		t.Fatalf("lines = %v, want %v", res.Lines, wantLines)
	}
	if res.Lines != Transpose(res.Board) {
		t.Fatal("lines must be the transposed board")
	}
	if len(res.LineWins) != 3 {
		t.Fatalf("got %d line wins, want 3", len(res.LineWins))
	}
	if !res.TotalPayout.Equal(decimal.NewFromInt(140)) {
		t.Fatalf("TotalPayout = %s, want 140", res.TotalPayout)
	}
}
