package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Mark is the content of a board cell.
type Mark string

const (
	EmptyCell Mark = ""
	Circle    Mark = "O"
	Cross     Mark = "X"
)

// Result is the outcome of a board. ResultNone means the game goes on.
type Result string

const (
	ResultNone   Result = ""
	ResultCircle Result = Result(Circle)
	ResultCross  Result = Result(Cross)
	ResultTie    Result = "-"
)

const (
	BoardSize      = 9
	CenterPosition = 4
)

var (
	// WinCombos are checked in this order; callers rely on it as a tie-break.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	CornerPositions = [4]int{0, 2, 6, 8}
	SidePositions   = [4]int{1, 3, 5, 7}

	// DiagonalEnds are the corner pairs spanning each diagonal.
	DiagonalEnds = [2][2]int{
		{0, 8},
		{6, 2},
	}
)

// ParseMark accepts "x"/"o" in any case.
func ParseMark(value string) (Mark, error) {
	switch Mark(strings.ToUpper(strings.TrimSpace(value))) {
	case Cross:
		return Cross, nil
	case Circle:
		return Circle, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, value)
	}
}

func (that Mark) IsPlayer() bool {
	return that == Circle || that == Cross
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case Circle:
		return Cross
	case Cross:
		return Circle
	default:
		return EmptyCell
	}
}

// Title is the plural name used in messages, e.g. "Circles".
func (that Mark) Title() string {
	switch that {
	case Circle:
		return "Circles"
	case Cross:
		return "Crosses"
	default:
		return ""
	}
}

func (that Result) IsTerminal() bool {
	return that != ResultNone
}

// Mark returns the winning mark, or EmptyCell for a tie or an ongoing game.
func (that Result) Mark() Mark {
	switch that {
	case ResultCircle:
		return Circle
	case ResultCross:
		return Cross
	default:
		return EmptyCell
	}
}

// Board is laid out row by row:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [BoardSize]Mark

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Positions returns the indices holding mark, in ascending order.
func (that Board) Positions(mark Mark) []int {
	positions := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == mark {
			positions = append(positions, i)
		}
	}

	return positions
}

func (that Board) IsEmpty() bool {
	return that.Count(EmptyCell) == BoardSize
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// ComputeWinner evaluates every line in WinCombos order and lets a later
// complete line overwrite an earlier one. A full board with no complete
// line is a tie.
func ComputeWinner(board Board) Result {
	winner := ResultNone
	if board.IsFull() {
		winner = ResultTie
	}

	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			winner = Result(a)
		}
	}

	return winner
}
