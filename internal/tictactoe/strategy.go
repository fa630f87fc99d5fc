package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
)

const noPosition = -1

// ChooseMove picks the bot's next cell. Rules are tried in order and the
// first one that yields a cell decides:
//
//  1. empty board: a random corner
//  2. complete the first line (WinCombos order) holding two bot marks
//  3. block the first line holding two human marks
//  4. bot opened the game and is at parity: a random corner, else any cell
//  5. the center
//  6. human holds both ends of a diagonal: a random side; otherwise a
//     random corner, else any cell
//
// rnd is only consulted to choose among equivalent cells.
func ChooseMove(board entity.Board, botMark, humanMark entity.Mark, botMovesFirst bool, rnd pkg.Random) (int, error) {
	if !botMark.IsPlayer() || humanMark != botMark.Opponent() {
		return noPosition, fmt.Errorf("%w: bot %q, human %q", apperror.ErrUnknownMark, botMark, humanMark)
	}

	emptyPositions := board.Positions(entity.EmptyCell)
	if len(emptyPositions) == 0 {
		return noPosition, fmt.Errorf("%w: board is full", apperror.ErrNoCandidateMove)
	}

	if board.IsEmpty() {
		return cornerOrAny(board, emptyPositions, rnd), nil
	}

	if position, ok := closingPosition(board, botMark, humanMark); ok {
		return position, nil
	}

	if position, ok := closingPosition(board, humanMark, botMark); ok {
		return position, nil
	}

	if botMovesFirst && board.Count(botMark) == board.Count(humanMark) {
		return cornerOrAny(board, emptyPositions, rnd), nil
	}

	if board[entity.CenterPosition] == entity.EmptyCell {
		return entity.CenterPosition, nil
	}

	if holdsDiagonalEnds(board, humanMark) {
		side, ok := pkg.Pick(rnd, emptyAmong(board, entity.SidePositions[:]))
		if !ok {
			return noPosition, fmt.Errorf("%w: no empty side against a diagonal", apperror.ErrNoCandidateMove)
		}

		return side, nil
	}

	return cornerOrAny(board, emptyPositions, rnd), nil
}

// closingPosition finds the first line where owner holds two cells and
// other holds none, and returns its remaining cell.
func closingPosition(board entity.Board, owner, other entity.Mark) (int, bool) {
	for _, combo := range entity.WinCombos {
		owned, blocked := 0, false
		free := noPosition

		for _, position := range combo {
			switch board[position] {
			case owner:
				owned++
			case other:
				blocked = true
			default:
				free = position
			}
		}

		if owned == 2 && !blocked {
			return free, true
		}
	}

	return noPosition, false
}

func holdsDiagonalEnds(board entity.Board, mark entity.Mark) bool {
	for _, ends := range entity.DiagonalEnds {
		if board[ends[0]] == mark && board[ends[1]] == mark {
			return true
		}
	}

	return false
}

func cornerOrAny(board entity.Board, emptyPositions []int, rnd pkg.Random) int {
	if corner, ok := pkg.Pick(rnd, emptyAmong(board, entity.CornerPositions[:])); ok {
		return corner
	}

	position, _ := pkg.Pick(rnd, emptyPositions)

	return position
}

func emptyAmong(board entity.Board, positions []int) []int {
	empty := make([]int, 0, len(positions))
	for _, position := range positions {
		if board[position] == entity.EmptyCell {
			empty = append(empty, position)
		}
	}

	return empty
}
