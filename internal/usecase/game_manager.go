package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *tictactoe.Session) error
	GetByID(ctx context.Context, id string) (*tictactoe.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type moveChooser interface {
	ChooseMove(board entity.Board, computer, opponent entity.Mark) (entity.Position, error)
}

// GameManager - hosts the play sessions and forwards the presentation layer actions into them.
type GameManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	bot         moveChooser
	humanMark   entity.Mark

	now   func() time.Time
	newID func() string
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, bot moveChooser, humanMark entity.Mark) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		bot:         bot,
		humanMark:   humanMark,

		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateSession - starts a new session; the computer opens if it plays circle.
func (that *GameManager) CreateSession(ctx context.Context) (*entity.Snapshot, error) {
	session, err := that.createSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed create session: %w", err)
	}

	return session.Snapshot(), nil
}

// GetOrCreateSession - resumes the session with the given id or starts a new one.
func (that *GameManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Snapshot, error) {
	if id == "" {
		return that.CreateSession(ctx)
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		that.logger.Info("session not found, new one created", "method", "GetOrCreateSession", "sessionID", id)
		return that.CreateSession(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed get session by id: %w", err)
	}

	return session.Snapshot(), nil
}

func (that *GameManager) GetState(ctx context.Context, id string) (*entity.Snapshot, error) {
	session, err := that.getSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return session.Snapshot(), nil
}

// Tap - the BoardTapped action. Occupied cells or finished rounds are ignored by the engine.
func (that *GameManager) Tap(ctx context.Context, id string, position int) (*entity.Snapshot, error) {
	cell := entity.Position(position)
	if !cell.Valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, position)
	}

	session, err := that.getSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var finished bool
	state := session.Do(func(controller *tictactoe.GameController) entity.MatchState {
		wasOver := controller.State().IsOver()
		next := controller.OnUserTap(cell)
		finished = !wasOver && next.IsOver()

		return next
	})

	if finished {
		that.logRoundEnd(id, state)
	}

	return &entity.Snapshot{SessionID: id, State: state}, nil
}

// PlayAgain - the PlayAgainClicked action.
func (that *GameManager) PlayAgain(ctx context.Context, id string) (*entity.Snapshot, error) {
	session, err := that.getSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	state := session.Do(func(controller *tictactoe.GameController) entity.MatchState {
		return controller.OnPlayAgain()
	})

	return &entity.Snapshot{SessionID: id, State: state}, nil
}

func (that *GameManager) DeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return apperror.ErrSessionIDRequired
	}

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session deleted", "method", "DeleteSession", "sessionID", id)

	return nil
}

func (that *GameManager) createSession(ctx context.Context) (*tictactoe.Session, error) {
	controller := tictactoe.NewGameController(that.logger, tictactoe.NewEngine(), that.bot, that.humanMark)
	session := tictactoe.NewSession(that.newID(), controller, that.now())

	session.Do(func(controller *tictactoe.GameController) entity.MatchState {
		return controller.Start()
	})

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	that.logger.Info("session created", "method", "createSession", "sessionID", session.ID, "human", that.humanMark.String())

	return session, nil
}

func (that *GameManager) getSessionByID(ctx context.Context, id string) (*tictactoe.Session, error) {
	if id == "" {
		return nil, apperror.ErrSessionIDRequired
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *GameManager) logRoundEnd(id string, state entity.MatchState) {
	that.logger.Info("round finished",
		"sessionID", id,
		"status", state.Status,
		"circle_wins", state.CircleWinCount,
		"cross_wins", state.CrossWinCount,
		"draws", state.DrawCount,
	)
}
