package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"tictactoe/internal/engine"
	"tictactoe/internal/report"
	"tictactoe/internal/server/game"
	"tictactoe/internal/tictactoe"
)

var ErrUnreachable = errors.New("position not reachable in a legal game")

type Options struct {
	Logger       zerolog.Logger
	Gatherer     prometheus.Gatherer // nil disables /metrics
	WebDir       string              // empty disables static files
	PingInterval time.Duration
}

// Handler serves the game API from a solved engine. The table is not
// extended after construction; mu guards the engine's node counters.
type Handler struct {
	router chi.Router

	mu     sync.Mutex
	engine *engine.Engine
	solved engine.SolveResult

	games *game.Manager
	log   zerolog.Logger
	ping  time.Duration
}

func NewHandler(e *engine.Engine, games *game.Manager, opts Options) *Handler {
	if opts.PingInterval <= 0 {
		opts.PingInterval = wsIdlePingInterval
	}
	h := &Handler{
		engine: e,
		games:  games,
		log:    opts.Logger,
		ping:   opts.PingInterval,
	}
	if s, ok := e.Table().Lookup(tictactoe.Empty.Index()); ok {
		h.solved = engine.SolveResult{Score: s, Positions: e.Table().Known()}
	} else {
		h.solved = e.Solve()
	}
	h.router = h.routes(opts)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "bad json")
	}
	return nil
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.games.NewGame()
	h.log.Debug().Str("game", g.ID).Msg("new game")
	writeJSON(w, http.StatusOK, NewGameResponse{
		GameID:     g.ID,
		Position:   tictactoe.Encode(g.Board, g.XToMove),
		ToMove:     tictactoe.SideOf(g.XToMove).String(),
		LegalMoves: legalMoves(g.Board),
		Status:     string(g.Status),
	})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	g, err := h.play(req.GameID, req.Move)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

func (h *Handler) play(id, move string) (game.GameState, error) {
	cell, ok := tictactoe.ParseCell(move)
	if !ok {
		return game.GameState{}, errors.Wrapf(game.ErrBadCell, "%q", move)
	}
	return h.games.Play(id, cell)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrOccupied), errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

// handleAiMove only thinks: it reports the best move without playing it.
func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	b, xToMove, err := tictactoe.DecodePosition(req.Position)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp, ok := h.analyse(b, xToMove)
	if !ok {
		writeError(w, http.StatusBadRequest, errors.Wrap(ErrUnreachable, req.Position))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// analyse answers from the solved table only. The table is keyed by stones,
// so the side to move must also follow from them.
func (h *Handler) analyse(b tictactoe.Board, xToMove bool) (AiMoveResponse, bool) {
	if !b.IsValid() || xToMove != b.XToMoveByParity() {
		return AiMoveResponse{}, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	score, ok := h.engine.Table().Lookup(b.Index())
	if !ok {
		return AiMoveResponse{}, false
	}
	// children of a solved position are solved too, so these are table hits
	moves := h.engine.Moves(b, xToMove)
	best, hasBest := h.engine.BestMove(b, xToMove)

	resp := AiMoveResponse{
		Score:   int(score),
		Outcome: outcomeFor(score, xToMove).String(),
		Moves:   movesToDTO(moves),
		Status:  string(game.StatusOf(b)),
	}
	if hasBest {
		dto := moveToDTO(best)
		resp.BestMove = &dto
	}
	return resp, true
}

func outcomeFor(s engine.Score, xToMove bool) report.Outcome {
	if !xToMove {
		s = s.Negate()
	}
	switch s {
	case engine.Winning:
		return report.XWins
	case engine.Losing:
		return report.XLoses
	}
	return report.Draw
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	resp := SolveResponse{
		Score:   int(h.solved.Score),
		Stats:   h.engine.Stats(),
		Summary: report.Summarize(h.engine.Table()),
	}
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTableEntry(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	idx, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || idx >= engine.TableSize {
		writeError(w, http.StatusBadRequest, errors.Errorf("index %q out of range", raw))
		return
	}

	h.mu.Lock()
	s, ok := h.engine.Table().Lookup(uint32(idx))
	h.mu.Unlock()

	b := tictactoe.BoardFromIndex(uint32(idx))
	resp := TableEntryResponse{
		Index:    uint32(idx),
		Position: tictactoe.Encode(b, b.XToMoveByParity()),
		Known:    ok,
	}
	if ok {
		e := report.Decode(uint32(idx), s)
		resp.Score = int(s)
		resp.Outcome = e.Outcome.String()
	}
	writeJSON(w, http.StatusOK, resp)
}
