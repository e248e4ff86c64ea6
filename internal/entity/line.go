package entity

import (
	"encoding/json"
	"fmt"
)

// Line - one of the 8 victory lines.
type Line uint8

const (
	NoLine Line = iota
	Horizontal1
	Horizontal2
	Horizontal3
	Vertical1
	Vertical2
	Vertical3
	Diagonal1
	Diagonal2
)

// VictoryLines - the canonical line order used for every scan and tie-break.
var VictoryLines = [8]Line{
	Horizontal1,
	Horizontal2,
	Horizontal3,
	Vertical1,
	Vertical2,
	Vertical3,
	Diagonal1,
	Diagonal2,
}

var lineCells = map[Line][3]Position{
	Horizontal1: {1, 2, 3},
	Horizontal2: {4, 5, 6},
	Horizontal3: {7, 8, 9},
	Vertical1:   {1, 4, 7},
	Vertical2:   {2, 5, 8},
	Vertical3:   {3, 6, 9},
	Diagonal1:   {1, 5, 9},
	Diagonal2:   {3, 5, 7},
}

var lineNames = map[Line]string{
	NoLine:      "none",
	Horizontal1: "horizontal1",
	Horizontal2: "horizontal2",
	Horizontal3: "horizontal3",
	Vertical1:   "vertical1",
	Vertical2:   "vertical2",
	Vertical3:   "vertical3",
	Diagonal1:   "diagonal1",
	Diagonal2:   "diagonal2",
}

// Cells - the three positions of the line in ascending order.
func (that Line) Cells() [3]Position {
	cells, ok := lineCells[that]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownLine, that))
	}

	return cells
}

// Contains - reports whether the position belongs to the line.
func (that Line) Contains(position Position) bool {
	if that == NoLine {
		return false
	}

	for _, cell := range that.Cells() {
		if cell == position {
			return true
		}
	}

	return false
}

func (that Line) String() string {
	if name, ok := lineNames[that]; ok {
		return name
	}

	return fmt.Sprintf("line(%d)", that)
}

func (that Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Line) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("failed to unmarshal line: %w", err)
	}

	for line, lineName := range lineNames {
		if lineName == name {
			*that = line
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownLine, name)
}
