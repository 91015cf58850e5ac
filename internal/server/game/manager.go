package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tictactoe/internal/tictactoe"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrOccupied     = errors.New("cell occupied")
	ErrGameOver     = errors.New("game over")
	ErrBadCell      = errors.New("bad cell")
)

// Manager keeps games in memory.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		XToMove:   true,
		Status:    StatusOngoing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return *g
}

// Get returns a copy of the game.
func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, errors.Wrap(ErrGameNotFound, id)
	}
	return copyState(g), nil
}

// Play places a mark for the side to move.
func (m *Manager) Play(id string, cell int) (GameState, error) {
	if cell < 0 || cell >= tictactoe.NumCells {
		return GameState{}, errors.Wrapf(ErrBadCell, "%d", cell)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, errors.Wrap(ErrGameNotFound, id)
	}
	if g.Status.Over() {
		return copyState(g), ErrGameOver
	}
	if g.Board.Occupied().Get(cell) {
		return copyState(g), errors.Wrap(ErrOccupied, tictactoe.CellName(cell))
	}

	g.Board = g.Board.Play(tictactoe.SideOf(g.XToMove), cell)
	g.Moves = append(g.Moves, cell)
	g.Status = StatusOf(g.Board)
	if !g.Status.Over() {
		g.XToMove = !g.XToMove
	}
	g.UpdatedAt = time.Now()
	return copyState(g), nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func copyState(g *GameState) GameState {
	out := *g
	out.Moves = append([]int(nil), g.Moves...)
	return out
}
