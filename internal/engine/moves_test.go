package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/tictactoe"
)

func cell(t *testing.T, name string) int {
	t.Helper()
	i, ok := tictactoe.ParseCell(name)
	require.True(t, ok, name)
	return i
}

func TestEveryOpeningMoveDraws(t *testing.T) {
	e := NewEngine()
	moves := e.BestMoves(tictactoe.Empty, true)
	require.Len(t, moves, tictactoe.NumCells)
	for _, m := range moves {
		assert.Equal(t, Drawing, m.Score, m.String())
	}
}

func TestCornerOpeningNeedsCentreReply(t *testing.T) {
	e := NewEngine()
	b := tictactoe.Empty.Play(tictactoe.X, cell(t, "a1"))

	best := e.BestMoves(b, false)
	require.Len(t, best, 1)
	assert.Equal(t, cell(t, "b2"), best[0].Cell)
	assert.Equal(t, Drawing, best[0].Score)

	for _, m := range e.Moves(b, false) {
		if m.Cell != cell(t, "b2") {
			assert.Equal(t, Losing, m.Score, m.String())
		}
	}
}

func TestBestMoveTakesTheWin(t *testing.T) {
	e := NewEngine()
	b := tictactoe.Board{}.
		Play(tictactoe.X, cell(t, "a1")).
		Play(tictactoe.O, cell(t, "a2")).
		Play(tictactoe.X, cell(t, "b1")).
		Play(tictactoe.O, cell(t, "b2"))

	m, ok := e.BestMove(b, true)
	require.True(t, ok)
	assert.Equal(t, cell(t, "c1"), m.Cell)
	assert.Equal(t, Winning, m.Score)
}

func TestNoMovesWhenGameIsOver(t *testing.T) {
	e := NewEngine()
	_, ok := e.BestMove(tictactoe.Board{X: tictactoe.TopRow, O: 0b000_000_011}, false)
	assert.False(t, ok)

	full := tictactoe.Board{X: 0b101_001_110, O: 0b010_110_001}
	assert.Empty(t, e.Moves(full, false))
}
