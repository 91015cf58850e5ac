// Package play runs a console game of tic-tac-toe between two people, or
// between a person and the solver.
package play

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type Game struct {
	in  *bufio.Scanner
	out io.Writer

	board   tictactoe.Board
	xToMove bool

	engine     *engine.Engine
	engineSide tictactoe.Side

	log zerolog.Logger
}

type Option func(*Game)

// WithEngine lets the solver play side.
func WithEngine(e *engine.Engine, side tictactoe.Side) Option {
	return func(g *Game) {
		g.engine = e
		g.engineSide = side
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

func NewGame(in io.Reader, out io.Writer, opts ...Option) *Game {
	g := &Game{
		in:         bufio.NewScanner(in),
		out:        out,
		xToMove:    true,
		engineSide: tictactoe.NoSide,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Board() tictactoe.Board { return g.board }

// Run plays until someone completes a line or the board fills up, and
// returns the winner (NoSide for a draw).
func (g *Game) Run() (tictactoe.Side, error) {
	for {
		side := tictactoe.SideOf(g.xToMove)

		var cell int
		if g.engine != nil && side == g.engineSide {
			m, ok := g.engine.BestMove(g.board, g.xToMove)
			if !ok {
				return tictactoe.NoSide, errors.New("engine found no move")
			}
			cell = m.Cell
			fmt.Fprintf(g.out, "engine plays %s\n", tictactoe.CellName(cell))
		} else {
			fmt.Fprintln(g.out, g.board)
			if !g.in.Scan() {
				if err := g.in.Err(); err != nil {
					return tictactoe.NoSide, errors.Wrap(err, "read move")
				}
				return tictactoe.NoSide, ErrInputClosed
			}
			var ok bool
			cell, ok = tictactoe.ParseCell(g.in.Text())
			if !ok {
				continue
			}
			if g.board.Occupied().Get(cell) {
				fmt.Fprintln(g.out, "Occupied")
				continue
			}
		}

		g.board = g.board.Play(side, cell)
		g.log.Debug().Str("side", side.String()).Str("cell", tictactoe.CellName(cell)).Msg("move")

		if g.board.Field(side).HasWon() {
			fmt.Fprintln(g.out, g.board)
			fmt.Fprintf(g.out, "%s wins!\n", side)
			return side, nil
		}
		if g.board.IsFull() {
			fmt.Fprintln(g.out, g.board)
			fmt.Fprintln(g.out, "Draw")
			return tictactoe.NoSide, nil
		}
		g.xToMove = !g.xToMove
	}
}
