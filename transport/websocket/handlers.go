package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

// handleConnect - creates a session or resumes the one named in the payload.
func (that *Server) handleConnect(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := decodePayload(msg)
	if err != nil {
		return errors.Join(err, c.sendErrorResponse(msg.Action, "invalid payload"))
	}

	snapshot, err := that.uGame.GetOrCreateSession(ctx, payload.SessionID)
	if err != nil {
		log.Error("failed to create or get session", "error", err)
		return c.sendErrorResponse(msg.Action, "failed to create a new session")
	}

	c.sessionID = snapshot.SessionID

	if err = c.sendSnapshot(msg.Action, snapshot); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "sessionID", snapshot.SessionID)

	return nil
}

func (that *Server) handleTap(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleTap")

	if c.sessionID == "" {
		return c.sendErrorResponse(msg.Action, apperror.ErrNoActiveSession.Error())
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return errors.Join(err, c.sendErrorResponse(msg.Action, "invalid payload"))
	}

	if payload.Position == nil {
		return c.sendErrorResponse(msg.Action, "position is required")
	}

	snapshot, err := that.uGame.Tap(ctx, c.sessionID, *payload.Position)
	if errors.Is(err, apperror.ErrInvalidCell) {
		return c.sendErrorResponse(msg.Action, apperror.ErrInvalidCell.Error())
	}

	if err != nil {
		log.Error("failed to tap", "sessionID", c.sessionID, "error", err)
		return c.sendErrorResponse(msg.Action, "failed to make a move")
	}

	return c.sendSnapshot(msg.Action, snapshot)
}

func (that *Server) handlePlayAgain(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handlePlayAgain")

	if c.sessionID == "" {
		return c.sendErrorResponse(msg.Action, apperror.ErrNoActiveSession.Error())
	}

	snapshot, err := that.uGame.PlayAgain(ctx, c.sessionID)
	if err != nil {
		log.Error("failed to start a new round", "sessionID", c.sessionID, "error", err)
		return c.sendErrorResponse(msg.Action, "failed to start a new round")
	}

	return c.sendSnapshot(msg.Action, snapshot)
}

func (that *Server) handlePing(_ context.Context, _ *Message, c *client) error {
	return c.sendMessage(actionPong, ResponsePayload{})
}
