package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetCount(t *testing.T) {
	var b BitBoard
	b.Set(0)
	b.Set(4)
	b.Set(8)

	assert.True(t, b.Get(0))
	assert.True(t, b.Get(4))
	assert.False(t, b.Get(1))
	assert.Equal(t, 3, b.Count())
	assert.Equal(t, MainDiagonal, b)
}

func TestSetIsValueSemantics(t *testing.T) {
	a := BitBoard(0)
	c := a
	c.Set(3)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, BitBoard(1<<3), c)
}

func TestContains(t *testing.T) {
	b := TopRow | BitBoard(1)
	assert.True(t, b.Contains(TopRow))
	assert.True(t, b.Contains(EmptyBoard))
	assert.False(t, b.Contains(BottomRow))
}

func TestPopWalksCellsInOrder(t *testing.T) {
	b := BitBoard(0b101_000_110)
	var got []int
	for !b.IsEmpty() {
		got = append(got, b.Pop())
	}
	assert.Equal(t, []int{1, 2, 6, 8}, got)
}

func TestFirstDoesNotClear(t *testing.T) {
	b := BitBoard(0b100_000)
	assert.Equal(t, 5, b.First())
	assert.Equal(t, BitBoard(0b100_000), b)
}

func TestPreconditionsPanic(t *testing.T) {
	var b BitBoard
	assert.Panics(t, func() { b.First() })
	assert.Panics(t, func() { b.Pop() })
	assert.Panics(t, func() { b.Set(9) })
	assert.Panics(t, func() { b.Get(-1) })
}

func TestNotStaysInNineBits(t *testing.T) {
	assert.Equal(t, Full, EmptyBoard.Not())
	assert.Equal(t, EmptyBoard, Full.Not())
	assert.Equal(t, Full&^TopRow, TopRow.Not())
}

func TestHasWon(t *testing.T) {
	for _, line := range Lines {
		require.True(t, line.HasWon(), "line %09b", line)
		require.True(t, (line | BitBoard(1<<4)).HasWon())
	}
	// X O X / X O O / O X X seen from either player
	assert.False(t, BitBoard(0b101_001_110).HasWon())
	assert.False(t, BitBoard(0b010_110_001).HasWon())
	assert.False(t, EmptyBoard.HasWon())
}

func TestLinesAreGeometric(t *testing.T) {
	cells := func(names ...string) BitBoard {
		var b BitBoard
		for _, n := range names {
			i, ok := ParseCell(n)
			require.True(t, ok, n)
			b.Set(i)
		}
		return b
	}
	assert.Equal(t, TopRow, cells("a3", "b3", "c3"))
	assert.Equal(t, BottomRow, cells("a1", "b1", "c1"))
	assert.Equal(t, LeftColumn, cells("a1", "a2", "a3"))
	assert.Equal(t, RightColumn, cells("c1", "c2", "c3"))
	assert.Equal(t, MainDiagonal, cells("a1", "b2", "c3"))
	assert.Equal(t, AntiDiagonal, cells("c1", "b2", "a3"))
}

func TestBitBoardString(t *testing.T) {
	assert.Equal(t, "1 1 1\n0 0 0\n0 0 1\n", (TopRow | BitBoard(1<<2)).String())
}
