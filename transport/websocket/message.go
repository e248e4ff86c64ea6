package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	actionConnect   = "connect"
	actionTap       = "board:tap"
	actionPlayAgain = "game:again"
	actionPing      = "ping"
	actionPong      = "pong"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	SessionID string `json:"session_id,omitempty"`
	Position  *int   `json:"position,omitempty"`
}

type ResponsePayload struct {
	Session *entity.Snapshot `json:"session,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// client - one upgraded connection and the session it plays in.
type client struct {
	conn      *websocket.Conn
	sessionID string
}

func (that *client) sendMessage(action string, payload ResponsePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: data}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) sendErrorResponse(action, message string) error {
	return that.sendMessage(action, ResponsePayload{Error: message})
}

func (that *client) sendSnapshot(action string, snapshot *entity.Snapshot) error {
	return that.sendMessage(action, ResponsePayload{Session: snapshot})
}
