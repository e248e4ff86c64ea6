package tictactoe

import (
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// Session - one human playing against the computer. Actions on a session are serialised.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	controller *GameController
}

func NewSession(id string, controller *GameController, now time.Time) *Session {
	return &Session{
		ID:         id,
		CreatedAt:  now,
		controller: controller,
	}
}

// Do - runs fn against the controller while holding the session lock.
func (that *Session) Do(fn func(controller *GameController) entity.MatchState) entity.MatchState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return fn(that.controller)
}

func (that *Session) State() entity.MatchState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.controller.State()
}

func (that *Session) Snapshot() *entity.Snapshot {
	return &entity.Snapshot{
		SessionID: that.ID,
		State:     that.State(),
	}
}
