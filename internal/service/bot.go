package service

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// centerPosition - the cell taken when nothing more urgent is on the board.
const centerPosition entity.Position = 5

var ErrNoAvailableMoves = errors.New("no available moves")

// Randomizer - source of the random fallback move. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// globalRandomizer - the process-wide math/rand source, safe for concurrent use.
type globalRandomizer struct{}

func (globalRandomizer) Intn(n int) int {
	return rand.Intn(n) //nolint: gosec // it's ok
}

// SeededRandomizer - a reproducible source shared by concurrent sessions.
type SeededRandomizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSeededRandomizer(seed int64) *SeededRandomizer {
	return &SeededRandomizer{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *SeededRandomizer) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}

// BotService - picks the computer's move: win, then block, then center, then random.
type BotService struct {
	rnd Randomizer
}

func NewBotService(rnd Randomizer) *BotService {
	if rnd == nil {
		rnd = globalRandomizer{}
	}

	return &BotService{
		rnd: rnd,
	}
}

// ChooseMove - returns a free position for computer. It never changes the board.
func (that *BotService) ChooseMove(board entity.Board, computer, opponent entity.Mark) (entity.Position, error) {
	availableCells := board.EmptyPositions()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if position, ok := completingCell(board, computer); ok {
		return position, nil
	}

	if position, ok := completingCell(board, opponent); ok {
		return position, nil
	}

	if board.IsEmptyAt(centerPosition) {
		return centerPosition, nil
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}

// NearWins - lines holding exactly two cells of mark and one free cell, in canonical order.
func NearWins(board entity.Board, mark entity.Mark) []entity.Line {
	var lines []entity.Line

	for _, line := range entity.VictoryLines {
		if _, ok := freeCellOfNearWin(board, line, mark); ok {
			lines = append(lines, line)
		}
	}

	return lines
}

// completingCell - the free cell of the first near-win line of mark.
func completingCell(board entity.Board, mark entity.Mark) (entity.Position, bool) {
	for _, line := range entity.VictoryLines {
		if position, ok := freeCellOfNearWin(board, line, mark); ok {
			return position, true
		}
	}

	return 0, false
}

func freeCellOfNearWin(board entity.Board, line entity.Line, mark entity.Mark) (entity.Position, bool) {
	var (
		count int
		free  entity.Position
	)

	for _, position := range line.Cells() {
		switch board.At(position) {
		case mark:
			count++
		case entity.Empty:
			free = position
		}
	}

	if count != 2 || free == 0 {
		return 0, false
	}

	return free, true
}
