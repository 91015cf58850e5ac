package engine

import (
	"math"
	"strconv"
)

// Score is an exact game value from the point of view of the side to move.
type Score int8

const (
	Losing  Score = -10
	Drawing Score = 0
	Winning Score = 10

	// Unknown marks a table slot that has not been solved. MinInt8 negates to
	// itself in int8, so it can never turn into a legal score.
	Unknown Score = math.MinInt8
)

// Negate flips the point of view. Unknown stays Unknown.
func (s Score) Negate() Score {
	if s == Unknown {
		return Unknown
	}
	return -s
}

func (s Score) IsKnown() bool { return s != Unknown }

func (s Score) String() string {
	switch s {
	case Winning:
		return "winning"
	case Drawing:
		return "drawing"
	case Losing:
		return "losing"
	case Unknown:
		return "unknown"
	}
	return "score(" + strconv.Itoa(int(s)) + ")"
}
