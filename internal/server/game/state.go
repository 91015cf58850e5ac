package game

import (
	"time"

	"tictactoe/internal/tictactoe"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusXWon    Status = "x_won"
	StatusOWon    Status = "o_won"
	StatusDraw    Status = "draw"
)

func (s Status) Over() bool { return s != StatusOngoing }

// StatusOf classifies a board.
func StatusOf(b tictactoe.Board) Status {
	switch b.Winner() {
	case tictactoe.X:
		return StatusXWon
	case tictactoe.O:
		return StatusOWon
	}
	if b.IsFull() {
		return StatusDraw
	}
	return StatusOngoing
}

type GameState struct {
	ID        string
	Board     tictactoe.Board
	XToMove   bool
	Status    Status
	Moves     []int
	CreatedAt time.Time
	UpdatedAt time.Time
}
