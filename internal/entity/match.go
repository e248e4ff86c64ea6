package entity

import "fmt"

const DrawStatus = "Game Draw"

// MatchState - the board plus the session score and the outcome of the current round.
type MatchState struct {
	Board          Board  `json:"board"`
	CircleWinCount int    `json:"circle_win_count"`
	CrossWinCount  int    `json:"cross_win_count"`
	DrawCount      int    `json:"draw_count"`
	CurrentTurn    Mark   `json:"current_turn"`
	HasWon         bool   `json:"has_won"`
	WinningLine    Line   `json:"winning_line"`
	Status         string `json:"status"`
}

// NewMatchState - zero counters, empty board, starting mark to move.
func NewMatchState(starting Mark) MatchState {
	return MatchState{
		CurrentTurn: starting,
		WinningLine: NoLine,
		Status:      TurnStatus(starting),
	}
}

// RoundsPlayed - completed rounds in the session (wins and draws).
func (that MatchState) RoundsPlayed() int {
	return that.CircleWinCount + that.CrossWinCount + that.DrawCount
}

// IsOver - the round is finished and no move is accepted until reset.
func (that MatchState) IsOver() bool {
	return that.CurrentTurn == NoTurn
}

// IsDraw - the round ended with a full board and no completed line.
func (that MatchState) IsDraw() bool {
	return that.IsOver() && !that.HasWon
}

// Winner - the mark that completed the winning line, Empty otherwise.
func (that MatchState) Winner() Mark {
	if !that.HasWon {
		return Empty
	}

	return that.Board.At(that.WinningLine.Cells()[0])
}

func TurnStatus(mark Mark) string {
	return fmt.Sprintf("Player '%s' turn", mark)
}

func WonStatus(mark Mark) string {
	return fmt.Sprintf("Player '%s' Won", mark)
}

// Snapshot - the state returned to the presentation layer for one session.
type Snapshot struct {
	SessionID string     `json:"session_id"`
	State     MatchState `json:"state"`
}
