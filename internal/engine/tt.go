package engine

import (
	"fmt"

	"github.com/pkg/errors"

	"tictactoe/internal/tictactoe"
)

// TableSize covers every (X, O) pair of nine-bit fields.
const TableSize = 1 << tictactoe.TableBits

var ErrTableConflict = errors.New("transposition table conflict")

// Table is the transposition table: a dense array indexed by Board.Index.
// The encoding is a bijection, so there are no collisions and no eviction.
type Table struct {
	scores []Score
	known  int
}

func NewTable() *Table {
	t := &Table{scores: make([]Score, TableSize)}
	for i := range t.scores {
		t.scores[i] = Unknown
	}
	return t
}

func (t *Table) Lookup(idx uint32) (Score, bool) {
	s := t.scores[idx]
	return s, s != Unknown
}

// Store fills a slot. Each slot goes from Unknown to its final score once;
// writing a different score over a known slot is a bug and panics.
func (t *Table) Store(idx uint32, s Score) {
	if s == Unknown {
		panic("engine: storing Unknown")
	}
	old := t.scores[idx]
	if old == s {
		return
	}
	if old != Unknown {
		panic(fmt.Sprintf("engine: slot %d already holds %v, refusing %v", idx, old, s))
	}
	t.scores[idx] = s
	t.known++
}

// Known is the number of solved positions.
func (t *Table) Known() int { return t.known }

func (t *Table) Len() int { return len(t.scores) }

// Each calls fn for every known slot in ascending index order.
func (t *Table) Each(fn func(idx uint32, s Score)) {
	for i, s := range t.scores {
		if s == Unknown {
			continue
		}
		fn(uint32(i), s)
	}
}

// Merge copies every known slot of other into t.
func (t *Table) Merge(other *Table) error {
	for i, s := range other.scores {
		if s == Unknown {
			continue
		}
		switch old := t.scores[i]; old {
		case Unknown:
			t.scores[i] = s
			t.known++
		case s:
		default:
			return errors.Wrapf(ErrTableConflict, "slot %d: %v vs %v", i, old, s)
		}
	}
	return nil
}
