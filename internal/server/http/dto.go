package httpserver

import (
	"tictactoe/internal/engine"
	"tictactoe/internal/report"
	"tictactoe/internal/server/game"
	"tictactoe/internal/tictactoe"
)

// Cells travel as names ("b2"), sides as "x" / "o".

type NewGameResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// StateResponse is returned by play and state.
type StateResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	History    []string `json:"history"`
	Status     string   `json:"status"`
}

type AiMoveRequest struct {
	Position string `json:"position"`
}

type MoveDTO struct {
	Cell  string `json:"cell"`
	Score int    `json:"score"`
}

type AiMoveResponse struct {
	BestMove *MoveDTO  `json:"best_move,omitempty"`
	Score    int       `json:"score"`
	Outcome  string    `json:"outcome"`
	Moves    []MoveDTO `json:"moves"`
	Status   string    `json:"status"`
}

type SolveResponse struct {
	Score   int            `json:"score"`
	Stats   engine.Stats   `json:"stats"`
	Summary report.Summary `json:"summary"`
}

type TableEntryResponse struct {
	Index    uint32 `json:"index"`
	Position string `json:"position"`
	Known    bool   `json:"known"`
	Score    int    `json:"score,omitempty"`
	Outcome  string `json:"outcome,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func legalMoves(b tictactoe.Board) []string {
	out := []string{}
	if b.Winner() != tictactoe.NoSide {
		return out
	}
	for empty := b.EmptyCells(); !empty.IsEmpty(); {
		out = append(out, tictactoe.CellName(empty.Pop()))
	}
	return out
}

func cellNames(cells []int) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = tictactoe.CellName(c)
	}
	return out
}

func stateToDTO(g game.GameState) StateResponse {
	return StateResponse{
		GameID:     g.ID,
		Position:   tictactoe.Encode(g.Board, g.XToMove),
		ToMove:     tictactoe.SideOf(g.XToMove).String(),
		LegalMoves: legalMoves(g.Board),
		History:    cellNames(g.Moves),
		Status:     string(g.Status),
	}
}

func moveToDTO(m engine.Move) MoveDTO {
	return MoveDTO{Cell: tictactoe.CellName(m.Cell), Score: int(m.Score)}
}

func movesToDTO(ms []engine.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}
