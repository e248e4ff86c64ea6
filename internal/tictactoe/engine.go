package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// Engine - owns the board and the match state of one session.
// It is not safe for concurrent use.
type Engine struct {
	state entity.MatchState
}

// NewEngine - empty board, zero counters, circle to move.
func NewEngine() *Engine {
	return &Engine{
		state: entity.NewMatchState(entity.Circle),
	}
}

// State - returns a copy of the current match state.
func (that *Engine) State() entity.MatchState {
	return that.state
}

// ApplyMove - places mark at position and settles the round.
// An illegal move leaves the state untouched and returns it as is.
func (that *Engine) ApplyMove(position entity.Position, mark entity.Mark) entity.MatchState {
	if !that.isLegal(position, mark) {
		return that.state
	}

	that.state.Board.Place(position, mark)
	that.updateMatchState(mark)

	return that.state
}

// Reset - clears the board for a new round. Counters survive across rounds.
func (that *Engine) Reset() entity.MatchState {
	starting := startingMark(that.state.RoundsPlayed())

	that.state.Board.Clear()
	that.state.CurrentTurn = starting
	that.state.HasWon = false
	that.state.WinningLine = entity.NoLine
	that.state.Status = entity.TurnStatus(starting)

	return that.state
}

// isLegal - the mark must be the one to move and the cell must be free.
func (that *Engine) isLegal(position entity.Position, mark entity.Mark) bool {
	if !mark.IsPlayer() || that.state.CurrentTurn != mark {
		return false
	}

	return that.state.Board.IsEmptyAt(position)
}

// updateMatchState - checks the outcome after mark was placed.
func (that *Engine) updateMatchState(mark entity.Mark) {
	if line, ok := that.state.Board.WinningLine(mark); ok {
		that.addWin(mark)
		that.state.HasWon = true
		that.state.WinningLine = line
		that.state.CurrentTurn = entity.NoTurn
		that.state.Status = entity.WonStatus(mark)

		return
	}

	// the round continues until all the cells are taken
	if that.state.Board.IsFull() {
		that.state.DrawCount++
		that.state.CurrentTurn = entity.NoTurn
		that.state.Status = entity.DrawStatus

		return
	}

	next := mark.Opponent()
	that.state.CurrentTurn = next
	that.state.Status = entity.TurnStatus(next)
}

func (that *Engine) addWin(mark entity.Mark) {
	if mark == entity.Circle {
		that.state.CircleWinCount++
	} else {
		that.state.CrossWinCount++
	}
}

// startingMark - circle opens after an even number of completed rounds, cross after an odd one.
func startingMark(roundsPlayed int) entity.Mark {
	if roundsPlayed%2 == 0 {
		return entity.Circle
	}

	return entity.Cross
}
