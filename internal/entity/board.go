package entity

import (
	"errors"
	"fmt"
)

// BoardSize - number of cells on the board.
const BoardSize = 9

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrUnknownMark     = errors.New("unknown mark")
	ErrUnknownLine     = errors.New("unknown victory line")
)

// Position - cell identifier 1..9, row-major: 1-2-3 / 4-5-6 / 7-8-9.
type Position int

func (that Position) Valid() bool {
	return that >= 1 && that <= BoardSize
}

func (that Position) index() int {
	return int(that) - 1
}

// Board - the 9 cells; position p is stored at index p-1.
type Board [BoardSize]Mark

// At - returns the mark at the position. An invalid position is a programming error.
func (that Board) At(position Position) Mark {
	if !position.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidPosition, position))
	}

	return that[position.index()]
}

// IsEmptyAt - reports whether a valid position holds Empty.
func (that Board) IsEmptyAt(position Position) bool {
	return position.Valid() && that.At(position) == Empty
}

// IsFull - the board is full when no position holds Empty.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// EmptyPositions - returns the free positions in ascending order.
func (that Board) EmptyPositions() []Position {
	positions := make([]Position, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			positions = append(positions, Position(i+1))
		}
	}

	return positions
}

// Completes - reports whether all three cells of the line hold mark.
func (that Board) Completes(line Line, mark Mark) bool {
	for _, position := range line.Cells() {
		if that.At(position) != mark {
			return false
		}
	}

	return true
}

// WinningLine - scans the victory lines in canonical order and returns the first one completed by mark.
func (that Board) WinningLine(mark Mark) (Line, bool) {
	for _, line := range VictoryLines {
		if that.Completes(line, mark) {
			return line, true
		}
	}

	return NoLine, false
}

// Place - sets a mark on the board.
func (that *Board) Place(position Position, mark Mark) {
	if !position.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidPosition, position))
	}

	that[position.index()] = mark
}

// Clear - resets all 9 cells to Empty.
func (that *Board) Clear() {
	for i := range that {
		that[i] = Empty
	}
}
