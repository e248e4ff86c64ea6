package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

const maxWaitDuration = 30 * time.Second

// FirstFreeCell - makes the computer's random fallback pick the lowest free position.
type FirstFreeCell struct{}

func (FirstFreeCell) Intn(int) int { return 0 }

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Sessions *repository.SessionRepository
	Manager  *usecase.GameManager
}

// New - a manager over an in-memory session store with a deterministic computer player.
func New(t *testing.T, human entity.Mark) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if testing.Verbose() {
		out = os.Stdout
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sessions := repository.NewSessionRepository()
	manager := usecase.NewGameManager(logger, sessions, service.NewBotService(FirstFreeCell{}), human)

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Sessions: sessions,
		Manager:  manager,
	}
}
