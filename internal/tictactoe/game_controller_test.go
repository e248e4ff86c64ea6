package tictactoe

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
)

type fixedRandomizer int

func (that fixedRandomizer) Intn(n int) int {
	if int(that) >= n {
		return n - 1
	}
	return int(that)
}

type failingChooser struct{}

func (failingChooser) ChooseMove(entity.Board, entity.Mark, entity.Mark) (entity.Position, error) {
	return 0, errors.New("boom")
}

func newTestController(human entity.Mark, index int) *GameController {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGameController(logger, NewEngine(), service.NewBotService(fixedRandomizer(index)), human)
}

func TestGameController_OnUserTap(t *testing.T) {
	t.Run("Computer answers every human move", func(t *testing.T) {
		// Given: a human playing circle
		controller := newTestController(entity.Circle, 0)

		// When: the human plays the corner
		state := controller.OnUserTap(1)

		// Then: the computer took the center and it is the human's turn again
		assert.Equal(t, entity.Circle, state.Board.At(1))
		assert.Equal(t, entity.Cross, state.Board.At(5))
		assert.Equal(t, entity.Circle, state.CurrentTurn)
		assert.Equal(t, "Player 'O' turn", state.Status)
	})

	t.Run("Rejected tap does not trigger the computer", func(t *testing.T) {
		// Given: the computer holds the center
		controller := newTestController(entity.Circle, 0)
		before := controller.OnUserTap(1)

		// When: the human taps the center
		after := controller.OnUserTap(5)

		// Then: nothing happened
		assert.Equal(t, before, after)
	})

	t.Run("Plays a round to a draw", func(t *testing.T) {
		controller := newTestController(entity.Circle, 0)

		// When: the human plays 1, 2, 7, 6, 9 and the computer answers 5, 3, 4, 8
		controller.OnUserTap(1)
		state := controller.OnUserTap(2)
		require.Equal(t, entity.Cross, state.Board.At(3), "computer blocks the top row")

		state = controller.OnUserTap(7)
		require.Equal(t, entity.Cross, state.Board.At(4), "computer blocks the left column")

		state = controller.OnUserTap(6)
		require.Equal(t, entity.Cross, state.Board.At(8), "computer falls back to the first free cell")

		state = controller.OnUserTap(9)

		// Then: the round is a draw and only the draw counter moved
		expected := entity.MatchState{
			Board: entity.Board{
				entity.Circle, entity.Circle, entity.Cross,
				entity.Cross, entity.Cross, entity.Circle,
				entity.Circle, entity.Cross, entity.Circle,
			},
			DrawCount:   1,
			CurrentTurn: entity.NoTurn,
			WinningLine: entity.NoLine,
			Status:      "Game Draw",
		}
		require.Equal(t, expected, state)
	})

	t.Run("Human wins with a fork", func(t *testing.T) {
		// Given: a randomizer that sends the computer to cell 3
		controller := newTestController(entity.Circle, 1)

		controller.OnUserTap(1)
		state := controller.OnUserTap(9)
		require.Equal(t, entity.Cross, state.Board.At(3))

		// When: the human forks on 7 and completes the left column
		state = controller.OnUserTap(7)
		require.Equal(t, entity.Cross, state.Board.At(8), "computer blocks the bottom row first")

		state = controller.OnUserTap(4)

		// Then: circle won
		assert.True(t, state.HasWon)
		assert.Equal(t, entity.Vertical1, state.WinningLine)
		assert.Equal(t, "Player 'O' Won", state.Status)
		assert.Equal(t, 1, state.CircleWinCount)
		assert.Equal(t, 0, state.CrossWinCount+state.DrawCount)

		// Then: further taps are ignored
		assert.Equal(t, state, controller.OnUserTap(6))
	})

	t.Run("Computer wins when the human ignores the threat", func(t *testing.T) {
		controller := newTestController(entity.Circle, 0)

		// When: the computer takes 5, then the first free cell 2
		controller.OnUserTap(1)
		state := controller.OnUserTap(9)
		require.Equal(t, entity.Cross, state.Board.At(2))

		// When: circle threatens 7 while cross can complete the middle column
		state = controller.OnUserTap(4)

		// Then: cross wins instead of blocking

		assert.True(t, state.HasWon)
		assert.Equal(t, entity.Vertical2, state.WinningLine)
		assert.Equal(t, "Player 'X' Won", state.Status)
		assert.Equal(t, 1, state.CrossWinCount)
	})

	t.Run("Chooser failure leaves the computer's turn pending", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		controller := NewGameController(logger, NewEngine(), failingChooser{}, entity.Circle)

		state := controller.OnUserTap(1)

		assert.Equal(t, entity.Cross, state.CurrentTurn)
		assert.Equal(t, entity.Board{entity.Circle}, state.Board)
	})
}

func TestGameController_OnPlayAgain(t *testing.T) {
	t.Run("Computer opens when the parity gives it the first move", func(t *testing.T) {
		// Given: one finished round
		controller := newTestController(entity.Circle, 0)
		for _, position := range []entity.Position{1, 2, 7, 6, 9} {
			controller.OnUserTap(position)
		}
		require.Equal(t, 1, controller.State().RoundsPlayed())

		// When: the human asks for a new round
		state := controller.OnPlayAgain()

		// Then: cross started, took the center, and the human is to move
		expectedBoard := entity.Board{}
		expectedBoard.Place(5, entity.Cross)

		assert.Equal(t, expectedBoard, state.Board)
		assert.Equal(t, entity.Circle, state.CurrentTurn)
		assert.Equal(t, 1, state.DrawCount)
		assert.False(t, state.HasWon)
	})

	t.Run("Human opens after an even number of rounds", func(t *testing.T) {
		controller := newTestController(entity.Circle, 0)

		state := controller.OnPlayAgain()

		assert.Equal(t, entity.Board{}, state.Board)
		assert.Equal(t, entity.Circle, state.CurrentTurn)
		assert.Equal(t, "Player 'O' turn", state.Status)
	})
}

func TestGameController_Start(t *testing.T) {
	t.Run("Computer playing circle opens on the center", func(t *testing.T) {
		controller := newTestController(entity.Cross, 0)

		state := controller.Start()

		assert.Equal(t, entity.Circle, state.Board.At(5))
		assert.Equal(t, entity.Cross, state.CurrentTurn)
		assert.Equal(t, entity.Circle, controller.ComputerMark())
		assert.Equal(t, entity.Cross, controller.HumanMark())
	})

	t.Run("Human playing circle moves first", func(t *testing.T) {
		controller := newTestController(entity.Circle, 0)

		state := controller.Start()

		assert.Equal(t, entity.Board{}, state.Board)
		assert.Equal(t, entity.Circle, state.CurrentTurn)
	})
}

func TestGameController_OnAction(t *testing.T) {
	controller := newTestController(entity.Circle, 0)

	state := controller.OnAction(BoardTapped{Position: 9})
	assert.Equal(t, entity.Circle, state.Board.At(9))
	assert.Equal(t, entity.Cross, state.Board.At(5))

	state = controller.OnAction(PlayAgainClicked{})
	assert.Equal(t, entity.Board{}, state.Board)
}
