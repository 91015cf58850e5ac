package engine

import (
	"github.com/samber/lo"

	"tictactoe/internal/tictactoe"
)

// Move is a legal placement scored for the side making it.
type Move struct {
	Cell  int   `json:"cell"`
	Score Score `json:"score"`
}

func (m Move) String() string {
	return tictactoe.CellName(m.Cell) + " " + m.Score.String()
}

// Moves lists every legal move in cell order. It is empty when the game is
// already over. Positions not yet in the table are solved on the way.
func (e *Engine) Moves(b tictactoe.Board, xToMove bool) []Move {
	if b.Winner() != tictactoe.NoSide {
		return nil
	}
	side := tictactoe.SideOf(xToMove)
	var out []Move
	for empty := b.EmptyCells(); !empty.IsEmpty(); {
		cell := empty.Pop()
		out = append(out, Move{
			Cell:  cell,
			Score: e.Search(b.Play(side, cell), !xToMove).Negate(),
		})
	}
	return out
}

// BestMoves returns every move that keeps the value of the position.
func (e *Engine) BestMoves(b tictactoe.Board, xToMove bool) []Move {
	moves := e.Moves(b, xToMove)
	if len(moves) == 0 {
		return nil
	}
	top := lo.MaxBy(moves, func(a, b Move) bool { return a.Score > b.Score }).Score
	return lo.Filter(moves, func(m Move, _ int) bool { return m.Score == top })
}

// BestMove returns the lowest-numbered optimal move.
func (e *Engine) BestMove(b tictactoe.Board, xToMove bool) (Move, bool) {
	best := e.BestMoves(b, xToMove)
	if len(best) == 0 {
		return Move{}, false
	}
	return best[0], true
}
