package websocket

import (
	"encoding/json"

	"github.com/perfectplay/tictactoe-backend/internal/entity"
	"github.com/perfectplay/tictactoe-backend/internal/tictactoe"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the client side of an action.
type RequestPayload struct {
	Player *entity.Player  `json:"player,omitempty"`
	GameID string          `json:"game_id,omitempty"`
	Type   string          `json:"type,omitempty"`
	Move   *tictactoe.Move `json:"move,omitempty"`
}

// ResponsePayload carries the server side of an action.
type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}
