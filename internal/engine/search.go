package engine

import (
	"time"

	"tictactoe/internal/tictactoe"
)

// SolveResult describes one full solve from the empty board.
type SolveResult struct {
	Score     Score         // value of the empty board for X
	Positions int           // solved table entries
	Nodes     int64         // Search calls, memo hits included
	Hits      int64         // calls answered from the table
	TimeUsed  time.Duration // wall time
}

// Search returns the exact value of b for the side to move (X when xToMove)
// and records it, together with every position below it, in the table.
//
// b must be reachable: the two fields are disjoint.
func (e *Engine) Search(b tictactoe.Board, xToMove bool) Score {
	e.nodes++

	idx := b.Index()
	if s, ok := e.table.Lookup(idx); ok {
		e.hits++
		return s
	}

	mover, opponent := b.X, b.O
	if !xToMove {
		mover, opponent = b.O, b.X
	}

	// The side to move can't hold a line it hasn't moved into yet, so only
	// the opponent's field needs checking.
	if opponent.HasWon() {
		e.table.Store(idx, Losing)
		return Losing
	}

	empty := (mover | opponent).Not()
	if empty.IsEmpty() {
		e.table.Store(idx, Drawing)
		return Drawing
	}

	best := Losing
	for !empty.IsEmpty() {
		cell := empty.Pop()
		child := mover
		child.Set(cell)

		var next tictactoe.Board
		if xToMove {
			next = tictactoe.Board{X: child, O: opponent}
		} else {
			next = tictactoe.Board{X: opponent, O: child}
		}

		if s := e.Search(next, !xToMove).Negate(); s > best {
			best = s
		}
	}

	e.table.Store(idx, best)
	return best
}

// Solve searches the empty board with X to move, which fills the table with
// every position reachable in a legal game.
func (e *Engine) Solve() SolveResult {
	start := time.Now()
	before := e.Stats()

	score := e.Search(tictactoe.Empty, true)

	res := e.result(score, before, time.Since(start))
	e.observe(res)
	e.log.Info().
		Str("score", score.String()).
		Int("positions", res.Positions).
		Int64("nodes", res.Nodes).
		Int64("hits", res.Hits).
		Dur("took", res.TimeUsed).
		Msg("solved")
	return res
}

func (e *Engine) result(score Score, before Stats, took time.Duration) SolveResult {
	after := e.Stats()
	return SolveResult{
		Score:     score,
		Positions: after.Positions,
		Nodes:     after.Nodes - before.Nodes,
		Hits:      after.Hits - before.Hits,
		TimeUsed:  took,
	}
}
