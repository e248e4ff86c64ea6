package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type moveChooser interface {
	ChooseMove(board entity.Board, computer, opponent entity.Mark) (entity.Position, error)
}

// Action - an input from the presentation layer.
type Action interface {
	isAction()
}

// BoardTapped - the human tapped a cell.
type BoardTapped struct {
	Position entity.Position
}

// PlayAgainClicked - the human asked for a new round.
type PlayAgainClicked struct{}

func (BoardTapped) isAction()      {}
func (PlayAgainClicked) isAction() {}

// GameController - binds the human's actions to the engine and answers with the computer's move.
type GameController struct {
	logger *slog.Logger

	engine *Engine
	bot    moveChooser

	human    entity.Mark
	computer entity.Mark
}

func NewGameController(logger *slog.Logger, engine *Engine, bot moveChooser, human entity.Mark) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		engine:   engine,
		bot:      bot,
		human:    human,
		computer: human.Opponent(),
	}
}

func (that *GameController) HumanMark() entity.Mark {
	return that.human
}

func (that *GameController) ComputerMark() entity.Mark {
	return that.computer
}

func (that *GameController) State() entity.MatchState {
	return that.engine.State()
}

// Start - opens the first round; the computer moves first when the engine expects its mark.
func (that *GameController) Start() entity.MatchState {
	return that.playComputerTurn(that.engine.State())
}

// OnAction - dispatches a presentation layer action.
func (that *GameController) OnAction(action Action) entity.MatchState {
	switch act := action.(type) {
	case BoardTapped:
		return that.OnUserTap(act.Position)
	case PlayAgainClicked:
		return that.OnPlayAgain()
	default:
		return that.engine.State()
	}
}

// OnUserTap - plays the human's move, then one computer move if the turn passed to it.
func (that *GameController) OnUserTap(position entity.Position) entity.MatchState {
	log := that.logger.With("method", "OnUserTap")

	before := that.engine.State()
	state := that.engine.ApplyMove(position, that.human)
	if state == before {
		log.Debug("move rejected", "position", int(position), "turn", before.CurrentTurn.String())
		return state
	}

	log.Debug("human moved", "position", int(position), "status", state.Status)

	return that.playComputerTurn(state)
}

// OnPlayAgain - resets the board; the computer opens if the new round starts with its mark.
func (that *GameController) OnPlayAgain() entity.MatchState {
	state := that.engine.Reset()

	that.logger.Debug("new round", "method", "OnPlayAgain", "rounds_played", state.RoundsPlayed(), "starting", state.CurrentTurn.String())

	return that.playComputerTurn(state)
}

func (that *GameController) playComputerTurn(state entity.MatchState) entity.MatchState {
	if state.CurrentTurn != that.computer {
		return state
	}

	log := that.logger.With("method", "playComputerTurn")

	position, err := that.bot.ChooseMove(state.Board, that.computer, that.human)
	if err != nil {
		log.Error("computer failed to choose a move", "error", err)
		return state
	}

	state = that.engine.ApplyMove(position, that.computer)

	log.Debug("computer moved", "position", int(position), "status", state.Status)

	return state
}
