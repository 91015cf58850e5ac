package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRoundTripsEveryIndex(t *testing.T) {
	for idx := uint32(0); idx < 1<<TableBits; idx++ {
		if got := BoardFromIndex(idx).Index(); got != idx {
			t.Fatalf("index %d decoded and re-encoded to %d", idx, got)
		}
	}
}

func TestIndexLayout(t *testing.T) {
	b := Board{X: TopRow, O: BottomRow}
	assert.Equal(t, uint32(TopRow)|uint32(BottomRow)<<9, b.Index())
	assert.Equal(t, b, BoardFromIndex(b.Index()))
}

func TestPlayDoesNotMutateReceiver(t *testing.T) {
	b := Empty
	next := b.Play(X, 4).Play(O, 0)
	assert.Equal(t, Empty, b)
	assert.Equal(t, X, next.At(4))
	assert.Equal(t, O, next.At(0))
	assert.Equal(t, NoSide, next.At(8))
	assert.True(t, next.IsValid())
	assert.True(t, next.XToMoveByParity())
}

func TestEmptyCellsAndFull(t *testing.T) {
	b := Board{X: 0b101_001_110, O: 0b010_110_001}
	assert.True(t, b.IsFull())
	assert.True(t, b.EmptyCells().IsEmpty())
	assert.Equal(t, NoSide, b.Winner())
	assert.False(t, b.XToMoveByParity())

	assert.Equal(t, Full, Empty.EmptyCells())
}

func TestWinner(t *testing.T) {
	assert.Equal(t, X, Board{X: LeftColumn, O: 0b000_010_010}.Winner())
	assert.Equal(t, O, Board{X: 0b000_001_011, O: AntiDiagonal}.Winner())
}

func TestBoardString(t *testing.T) {
	b := Empty.Play(X, 4).Play(O, 0)
	want := "3 |-|-|-|\n" +
		"2 |-|X|-|\n" +
		"1 |O|-|-|\n" +
		"   a b c\n"
	assert.Equal(t, want, b.String())
}

func TestParseCell(t *testing.T) {
	cases := map[string]int{"a1": 0, "b1": 1, "c1": 2, "a2": 3, "b2": 4, "c3": 8, " c2\n": 5}
	for tok, want := range cases {
		got, ok := ParseCell(tok)
		require.True(t, ok, tok)
		assert.Equal(t, want, got, tok)
	}
	for _, tok := range []string{"", "a", "d1", "a4", "a0", "1a", "A1", "a1x", "b22"} {
		_, ok := ParseCell(tok)
		assert.False(t, ok, tok)
	}
}

func TestCellNameInvertsParseCell(t *testing.T) {
	for i := 0; i < NumCells; i++ {
		got, ok := ParseCell(CellName(i))
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}

func TestEncodeDecode(t *testing.T) {
	b := Empty.Play(X, 4).Play(O, 0).Play(X, 8)
	s := Encode(b, false)
	assert.Equal(t, "..X/.X./O.. o", s)

	got, xToMove, err := DecodePosition(s)
	require.NoError(t, err)
	assert.Equal(t, b, got)
	assert.False(t, xToMove)

	got, xToMove, err = DecodePosition("--x/-x-/o-- X")
	require.NoError(t, err)
	assert.Equal(t, b, got)
	assert.True(t, xToMove)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"..X/.X./O..",
		"..X/.X. o",
		"..X/.X./O... o",
		"..Z/.X./O.. o",
		"..X/.X./O.. z",
	} {
		_, _, err := DecodePosition(s)
		assert.ErrorIs(t, err, ErrInvalidPosition, s)
	}
}

func TestSymmetries(t *testing.T) {
	b := Empty.Play(X, 0).Play(O, 1)
	images := b.Symmetries()
	assert.Equal(t, b, images[0])

	seen := map[Board]bool{}
	for _, img := range images {
		seen[img] = true
		assert.Equal(t, 1, img.X.Count())
		assert.Equal(t, 1, img.O.Count())
		// a corner stays a corner
		assert.True(t, img.X.Contains(BitBoard(1<<img.X.First())))
		assert.NotEqual(t, 4, img.X.First())
	}
	assert.Len(t, seen, 8)

	assert.Equal(t, BitBoard(4).Rotate().Rotate().Rotate().Rotate(), BitBoard(4))
	for _, line := range Lines {
		assert.True(t, line.Rotate().HasWon())
		assert.True(t, line.Mirror().HasWon())
	}
}
