package entity

import (
	"encoding/json"
	"fmt"
)

// Mark - the symbol occupying a cell.
type Mark uint8

const (
	Empty Mark = iota
	Circle
	Cross
)

// NoTurn - the turn marker of a finished round.
const NoTurn = Empty

const (
	circleSymbol = "O"
	crossSymbol  = "X"
)

func (that Mark) String() string {
	switch that {
	case Circle:
		return circleSymbol
	case Cross:
		return crossSymbol
	default:
		return ""
	}
}

// Opponent - returns the other playing mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case Circle:
		return Cross
	case Cross:
		return Circle
	default:
		return Empty
	}
}

// IsPlayer - reports whether the mark belongs to a player.
func (that Mark) IsPlayer() bool {
	return that == Circle || that == Cross
}

// ParseMark - parses "O" or "X" into a player mark.
func ParseMark(symbol string) (Mark, error) {
	switch symbol {
	case circleSymbol:
		return Circle, nil
	case crossSymbol:
		return Cross, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, symbol)
	}
}

func (that Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	var symbol string
	if err := json.Unmarshal(data, &symbol); err != nil {
		return fmt.Errorf("failed to unmarshal mark: %w", err)
	}

	if symbol == "" {
		*that = Empty
		return nil
	}

	mark, err := ParseMark(symbol)
	if err != nil {
		return err
	}

	*that = mark

	return nil
}
