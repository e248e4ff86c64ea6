package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const usage = "type 1-9 to play a cell, n for a new round, q to quit"

type gameUseCase interface {
	CreateSession(ctx context.Context) (*entity.Snapshot, error)
	Tap(ctx context.Context, id string, position int) (*entity.Snapshot, error)
	PlayAgain(ctx context.Context, id string) (*entity.Snapshot, error)
	DeleteSession(ctx context.Context, id string) error
}

// Console - plays one session in a terminal.
type Console struct {
	logger *slog.Logger
	uGame  gameUseCase

	in       io.Reader
	renderer *renderer
}

func New(logger *slog.Logger, uGame gameUseCase, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		uGame:    uGame,
		in:       in,
		renderer: newRenderer(out, opts...),
	}
}

// Run - reads commands until q, end of input or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	snapshot, err := that.uGame.CreateSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	sessionID := snapshot.SessionID
	defer func() {
		if err := that.uGame.DeleteSession(context.Background(), sessionID); err != nil {
			that.logger.Error("failed to delete session", "sessionID", sessionID, "error", err)
		}
	}()

	that.renderer.hint(usage)
	that.renderer.render(snapshot.State)

	done := make(chan struct{})
	defer close(done)

	lines, readErr := that.readLines(done)
	for {
		var command string

		select {
		case <-ctx.Done():
			return nil
		case err = <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		case command = <-lines:
		}

		command = strings.TrimSpace(command)

		switch {
		case command == "":
			continue
		case command == "q":
			return nil
		case command == "n":
			snapshot, err = that.uGame.PlayAgain(ctx, sessionID)
		default:
			snapshot, err = that.tap(ctx, sessionID, command)
		}

		if err != nil {
			that.renderer.hint(err.Error())
			continue
		}

		that.renderer.render(snapshot.State)
	}
}

// readLines - feeds input lines to a channel until done is closed; the error channel receives the scanner result at end of input.
func (that *Console) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (that *Console) tap(ctx context.Context, sessionID, command string) (*entity.Snapshot, error) {
	position, err := strconv.Atoi(command)
	if err != nil {
		return nil, fmt.Errorf("unknown command %q, %s", command, usage)
	}

	return that.uGame.Tap(ctx, sessionID, position)
}
