// Package selfplay pits the engine against itself. Each side picks uniformly
// among its optimal moves, so repeated games wander through different lines
// that all keep the game value.
package selfplay

import (
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

// Rand picks an index in [0, n). *frand.RNG satisfies it.
type Rand interface {
	Intn(n int) int
}

type Result struct {
	Winner tictactoe.Side
	Moves  []int
}

type Tally struct {
	Games  int `json:"games"`
	XWins  int `json:"x_wins"`
	OWins  int `json:"o_wins"`
	Draws  int `json:"draws"`
	Plies  int `json:"plies"`
	Unique int `json:"unique"`
}

func (t *Tally) add(r Result) {
	t.Games++
	t.Plies += len(r.Moves)
	switch r.Winner {
	case tictactoe.X:
		t.XWins++
	case tictactoe.O:
		t.OWins++
	default:
		t.Draws++
	}
}

// Play runs a single game from the empty board.
func Play(e *engine.Engine, rng Rand) Result {
	if rng == nil {
		rng = frand.New()
	}
	b := tictactoe.Empty
	xToMove := true
	var moves []int
	for b.Winner() == tictactoe.NoSide && !b.IsFull() {
		best := e.BestMoves(b, xToMove)
		m := best[rng.Intn(len(best))]
		b = b.Play(tictactoe.SideOf(xToMove), m.Cell)
		moves = append(moves, m.Cell)
		xToMove = !xToMove
	}
	return Result{Winner: b.Winner(), Moves: moves}
}

// Run plays games self-play games and tallies them.
func Run(e *engine.Engine, games int, rng Rand, log zerolog.Logger) Tally {
	if rng == nil {
		rng = frand.New()
	}
	var t Tally
	seen := make(map[string]struct{})
	for g := 0; g < games; g++ {
		r := Play(e, rng)
		t.add(r)
		line := lineKey(r.Moves)
		if _, ok := seen[line]; !ok {
			seen[line] = struct{}{}
			t.Unique++
		}
		log.Debug().
			Int("game", g+1).
			Str("line", line).
			Str("winner", r.Winner.String()).
			Msg("selfplay game")
	}
	log.Info().
		Int("games", t.Games).
		Int("draws", t.Draws).
		Int("x_wins", t.XWins).
		Int("o_wins", t.OWins).
		Int("unique", t.Unique).
		Msg("selfplay finished")
	return t
}

func lineKey(moves []int) string {
	key := make([]byte, 0, 3*len(moves))
	for i, m := range moves {
		if i > 0 {
			key = append(key, ' ')
		}
		key = append(key, tictactoe.CellName(m)...)
	}
	return string(key)
}
