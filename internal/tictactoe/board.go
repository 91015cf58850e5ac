package tictactoe

import "strings"

const (
	Rows = 3
	Cols = 3

	// TableBits is the width of Board.Index: nine bits per player.
	TableBits = 2 * NumCells
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

type Side int8

const (
	NoSide Side = -1
	X      Side = 0
	O      Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case X:
		return O
	case O:
		return X
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case X:
		return "x"
	case O:
		return "o"
	}
	return "-"
}

// SideOf maps the engine's x-to-move flag to a Side.
func SideOf(xToMove bool) Side {
	if xToMove {
		return X
	}
	return O
}

// Board is a position: one BitBoard per player. Side to move is not stored.
type Board struct {
	X BitBoard
	O BitBoard
}

var Empty = Board{}

// Field returns the BitBoard of side s.
func (b Board) Field(s Side) BitBoard {
	if s == O {
		return b.O
	}
	return b.X
}

// Play returns a copy of b with cell i set for side s.
func (b Board) Play(s Side, i int) Board {
	if s == O {
		b.O.Set(i)
	} else {
		b.X.Set(i)
	}
	return b
}

func (b Board) Occupied() BitBoard  { return b.X | b.O }
func (b Board) EmptyCells() BitBoard { return b.Occupied().Not() }
func (b Board) IsFull() bool         { return b.Occupied() == Full }

// At returns the side occupying cell i, or NoSide.
func (b Board) At(i int) Side {
	switch {
	case b.X.Get(i):
		return X
	case b.O.Get(i):
		return O
	}
	return NoSide
}

// Index is the raw table encoding: X in the low nine bits, O in the next nine.
func (b Board) Index() uint32 {
	return uint32(b.X) | uint32(b.O)<<NumCells
}

// BoardFromIndex is the inverse of Index for every idx < 1<<TableBits.
func BoardFromIndex(idx uint32) Board {
	return Board{
		X: BitBoard(idx & uint32(Full)),
		O: BitBoard(idx >> NumCells & uint32(Full)),
	}
}

// XToMoveByParity assumes X moved first and the sides alternated.
func (b Board) XToMoveByParity() bool {
	return b.X.Count() == b.O.Count()
}

// Winner returns the side holding a complete line, or NoSide.
func (b Board) Winner() Side {
	if b.X.HasWon() {
		return X
	}
	if b.O.HasWon() {
		return O
	}
	return NoSide
}

// IsValid reports whether the fields are disjoint.
func (b Board) IsValid() bool {
	return b.X&b.O == EmptyBoard
}

// String draws the board with rank 3 on top:
//
//	3 |-|-|-|
//	2 |-|X|-|
//	1 |O|-|-|
//	   a b c
func (b Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		sb.WriteString(" |")
		for col := 0; col < Cols; col++ {
			switch b.At(indexOf(row, col)) {
			case X:
				sb.WriteByte('X')
			case O:
				sb.WriteByte('O')
			default:
				sb.WriteByte('-')
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c\n")
	return sb.String()
}
