package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"tictactoe/internal/server/game"
)

const wsIdlePingInterval = 30 * time.Second

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// wsRequest is what clients send. With AI set, the engine answers the
// move in the same round trip.
type wsRequest struct {
	Type   string `json:"type"` // "new" or "move"
	GameID string `json:"game_id,omitempty"`
	Move   string `json:"move,omitempty"`
	AI     bool   `json:"ai,omitempty"`
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func envelope(typ string, payload any) []byte {
	return mustMarshal(wsMessage{Type: typ, Payload: mustMarshal(payload)})
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < interval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws upgrade")
		return
	}
	send := make(chan []byte, 16)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, send, h.ping); err != nil {
			h.log.Debug().Err(err).Msg("ws write")
		}
	}()

	defer func() {
		close(send)
		<-done
	}()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req wsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			send <- envelope("error", ErrorResponse{Error: "bad json"})
			continue
		}
		send <- h.handleWSRequest(req)
	}
}

func (h *Handler) handleWSRequest(req wsRequest) []byte {
	switch req.Type {
	case "new":
		return envelope("state", stateToDTO(h.games.NewGame()))
	case "move":
		g, err := h.play(req.GameID, req.Move)
		if err == nil && req.AI {
			g, err = h.reply(g)
		}
		if err != nil {
			return envelope("error", ErrorResponse{Error: err.Error()})
		}
		return envelope("state", stateToDTO(g))
	}
	return envelope("error", ErrorResponse{Error: "unknown message type " + req.Type})
}

// reply plays the engine's best move for the side to move.
func (h *Handler) reply(g game.GameState) (game.GameState, error) {
	if g.Status.Over() {
		return g, nil
	}
	h.mu.Lock()
	best, ok := h.engine.BestMove(g.Board, g.XToMove)
	h.mu.Unlock()
	if !ok {
		return g, nil
	}
	return h.games.Play(g.ID, best.Cell)
}
