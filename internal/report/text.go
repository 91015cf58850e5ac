// Package report renders a solved table for people and for other programs.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

// Outcome is a game value from X's point of view.
type Outcome int8

const (
	XLoses Outcome = -1
	Draw   Outcome = 0
	XWins  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X is winning"
	case XLoses:
		return "O is winning"
	}
	return "This can be drawn"
}

// Entry is one decoded table slot.
type Entry struct {
	Index   uint32
	Board   tictactoe.Board
	XToMove bool
	Score   engine.Score // side-to-move view, as stored
	Outcome Outcome
}

// Decode turns a slot into an Entry. The side to move is derived from the
// piece counts, which holds for every position of a legal game.
func Decode(idx uint32, s engine.Score) Entry {
	b := tictactoe.BoardFromIndex(idx)
	xToMove := b.XToMoveByParity()
	xView := s
	if !xToMove {
		xView = s.Negate()
	}
	out := Draw
	switch xView {
	case engine.Winning:
		out = XWins
	case engine.Losing:
		out = XLoses
	}
	return Entry{Index: idx, Board: b, XToMove: xToMove, Score: s, Outcome: out}
}

// Entries decodes every known slot in index order.
func Entries(t *engine.Table) []Entry {
	out := make([]Entry, 0, t.Known())
	t.Each(func(idx uint32, s engine.Score) {
		out = append(out, Decode(idx, s))
	})
	return out
}

const separator = ">>>>>><<<<<<"

// WriteText prints every solved position followed by its outcome.
func WriteText(w io.Writer, t *engine.Table) error {
	bw := bufio.NewWriter(w)
	for _, e := range Entries(t) {
		fmt.Fprintln(bw, e.Board)
		fmt.Fprintln(bw, e.Outcome)
		fmt.Fprintln(bw, separator)
		fmt.Fprintln(bw)
	}
	return errors.Wrap(bw.Flush(), "write text report")
}

// Summary counts solved positions per outcome.
type Summary struct {
	Positions int `json:"positions"`
	XWins     int `json:"x_wins"`
	Draws     int `json:"draws"`
	XLoses    int `json:"x_loses"`
}

func Summarize(t *engine.Table) Summary {
	var s Summary
	for _, e := range Entries(t) {
		s.Positions++
		switch e.Outcome {
		case XWins:
			s.XWins++
		case XLoses:
			s.XLoses++
		default:
			s.Draws++
		}
	}
	return s
}
