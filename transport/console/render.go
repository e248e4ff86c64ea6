package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	circleColor = "#61AFEF"
	crossColor  = "#E06C75"
	hintColor   = "#5C6370"
)

// renderer - draws the match state with terminal styling.
type renderer struct {
	out *termenv.Output
}

func newRenderer(w io.Writer, opts ...termenv.OutputOption) *renderer {
	return &renderer{
		out: termenv.NewOutput(w, opts...),
	}
}

func (that *renderer) render(state entity.MatchState) {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 1; col <= 3; col++ {
			position := entity.Position(row*3 + col)
			cells = append(cells, that.cell(state, position))
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	sb.WriteString("\n" + state.Status + "\n")
	sb.WriteString(fmt.Sprintf("O: %d  X: %d  Draw: %d\n", state.CircleWinCount, state.CrossWinCount, state.DrawCount))

	fmt.Fprint(that.out, sb.String())
}

func (that *renderer) cell(state entity.MatchState, position entity.Position) string {
	mark := state.Board.At(position)
	if mark == entity.Empty {
		return that.out.String(fmt.Sprintf("%d", position)).Foreground(that.out.Color(hintColor)).String()
	}

	color := circleColor
	if mark == entity.Cross {
		color = crossColor
	}

	style := that.out.String(mark.String()).Foreground(that.out.Color(color))
	if state.HasWon && state.WinningLine.Contains(position) {
		style = style.Bold().Underline()
	}

	return style.String()
}

func (that *renderer) hint(message string) {
	fmt.Fprintln(that.out, that.out.String(message).Faint().String())
}
