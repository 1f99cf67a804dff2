package line

import (
	"slot_machine/internal/model"
)

// Source - источник случайных чисел. *rand.Rand из math/rand/v2 подходит.
type Source interface {
	// IntN возвращает число из [0, n)
	IntN(n int) int
}

type symbolCount struct {
	symbol model.Symbol
	count  int
}

// ReelGenerator - генератор игрового поля.
// Каждый барабан тянет символы без возврата из своего пула.
type ReelGenerator struct {
	counts []symbolCount
	size   int
	src    Source
}

// NewReelGenerator - counts копируется, дальнейшие изменения карты на генератор не влияют
func NewReelGenerator(counts map[model.Symbol]int, src Source) *ReelGenerator {
	g := &ReelGenerator{src: src}
	// Порядок символов фиксированный, чтобы пул был одинаковым при одинаковом seed
	for _, sym := range model.AllSymbols() {
		n := counts[sym]
		if n <= 0 {
			continue
		}
		g.counts = append(g.counts, symbolCount{symbol: sym, count: n})
		g.size += n
	}
	if g.size < model.Rows {
		panic("reel pool is smaller than reel height")
	}
	return g
}

// GenerateBoard генерирует игровое поле 3x3 по барабанам
func (g *ReelGenerator) GenerateBoard() model.Board {
	var board model.Board
	for r := 0; r < model.Cols; r++ {
		board[r] = g.spinReel()
	}
	return board
}

// spinReel - пул собирается заново для каждого барабана и больше никому не отдается
func (g *ReelGenerator) spinReel() model.Reel {
	pool := g.pool()
	var reel model.Reel
	for row := 0; row < model.Rows; row++ {
		i := g.src.IntN(len(pool))
		reel[row] = pool[i]
		// Убираем выпавший символ из пула
		pool = append(pool[:i], pool[i+1:]...)
	}
	return reel
}

// pool - каждый символ повторяется count раз
func (g *ReelGenerator) pool() []model.Symbol {
	pool := make([]model.Symbol, 0, g.size)
	for _, sc := range g.counts {
		for i := 0; i < sc.count; i++ {
			pool = append(pool, sc.symbol)
		}
	}
	return pool
}

// Transpose переводит поле из барабанов в линии: lines[r][c] = board[c][r]
func Transpose(board model.Board) model.Lines {
	var lines model.Lines
	for r := 0; r < model.Rows; r++ {
		for c := 0; c < model.Cols; c++ {
			lines[r][c] = board[c][r]
		}
	}
	return lines
}
