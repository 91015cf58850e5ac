package tictactoe

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidPosition = errors.New("invalid position")

// Encode writes a FEN-like string: ranks 3..1 separated by '/', '.' for a free
// cell, then a space and the side to move ('x' or 'o').
func Encode(b Board, xToMove bool) string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		if row != Rows-1 {
			sb.WriteByte('/')
		}
		for col := 0; col < Cols; col++ {
			switch b.At(indexOf(row, col)) {
			case X:
				sb.WriteByte('X')
			case O:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(SideOf(xToMove).String())
	return sb.String()
}

// DecodePosition parses the output of Encode. Letters are case-insensitive.
func DecodePosition(s string) (Board, bool, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Board{}, false, errors.Wrapf(ErrInvalidPosition, "want 2 fields, got %d", len(parts))
	}
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Rows {
		return Board{}, false, errors.Wrapf(ErrInvalidPosition, "want %d ranks, got %d", Rows, len(ranks))
	}

	var b Board
	for r, rank := range ranks {
		if len(rank) != Cols {
			return Board{}, false, errors.Wrapf(ErrInvalidPosition, "rank %q", rank)
		}
		row := Rows - 1 - r
		for col := 0; col < Cols; col++ {
			switch rank[col] {
			case 'X', 'x':
				b.X.Set(indexOf(row, col))
			case 'O', 'o':
				b.O.Set(indexOf(row, col))
			case '.', '-':
			default:
				return Board{}, false, errors.Wrapf(ErrInvalidPosition, "bad cell %q", rank[col])
			}
		}
	}

	var xToMove bool
	switch strings.ToLower(parts[1]) {
	case "x":
		xToMove = true
	case "o":
		xToMove = false
	default:
		return Board{}, false, errors.Wrapf(ErrInvalidPosition, "bad side %q", parts[1])
	}
	return b, xToMove, nil
}
