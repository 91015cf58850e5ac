package selfplay

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

// firstPick always takes the lowest optimal move.
type firstPick struct{}

func (firstPick) Intn(int) int { return 0 }

func TestPlayDeterministicLine(t *testing.T) {
	e := engine.NewEngine()
	r := Play(e, firstPick{})
	assert.Equal(t, tictactoe.NoSide, r.Winner)
	require.Len(t, r.Moves, tictactoe.NumCells)
	// a1 draws, and after a corner b2 is forced
	assert.Equal(t, []int{0, 4}, r.Moves[:2])
}

func TestPerfectPlayAlwaysDraws(t *testing.T) {
	e := engine.NewEngine()
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)

	tally := Run(e, 200, rng, zerolog.Nop())
	assert.Equal(t, 200, tally.Games)
	assert.Equal(t, 200, tally.Draws)
	assert.Zero(t, tally.XWins)
	assert.Zero(t, tally.OWins)
	assert.Equal(t, 200*tictactoe.NumCells, tally.Plies)
	assert.Greater(t, tally.Unique, 1)
}

func TestLineKey(t *testing.T) {
	assert.Equal(t, "a1 b2 c3", lineKey([]int{0, 4, 8}))
	assert.Equal(t, "", lineKey(nil))
}
