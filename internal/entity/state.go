package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Move is a single placement.
type Move struct {
	Position int  `json:"position"`
	Mark     Mark `json:"mark"`
}

// GameState is a value: operations return an updated copy and never touch
// the receiver, so a caller holding an older snapshot keeps seeing it.
type GameState struct {
	Board       Board  `json:"board"`
	CurrentMark Mark   `json:"current_mark"`
	LastMove    *Move  `json:"last_move,omitempty"`
	Winner      Result `json:"winner"`
}

// NewGame returns an empty board with startingMark to move.
func NewGame(startingMark Mark) (GameState, error) {
	if !startingMark.IsPlayer() {
		return GameState{}, fmt.Errorf("%w: starting mark %q", apperror.ErrUnknownMark, startingMark)
	}

	return GameState{
		CurrentMark: startingMark,
		Winner:      ResultNone,
	}, nil
}

func (that GameState) IsTerminal() bool {
	return that.Winner.IsTerminal()
}

// PlaceMark puts the current mark on position and passes the turn.
// The receiver is left untouched when an error is returned.
func (that GameState) PlaceMark(position int) (GameState, error) {
	if position < 0 || position >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, position)
	}

	if that.IsTerminal() {
		return that, apperror.ErrGameFinished
	}

	if that.Board[position] != EmptyCell {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, position)
	}

	next := that
	next.Board[position] = that.CurrentMark
	next.LastMove = &Move{Position: position, Mark: that.CurrentMark}
	next.CurrentMark = that.CurrentMark.Opponent()
	next.Winner = ComputeWinner(next.Board)

	return next, nil
}

// UndoLastMove reverts the single stored ply. Without a last move, or once
// the game is over, the state is returned unchanged.
func (that GameState) UndoLastMove() GameState {
	if that.LastMove == nil || that.IsTerminal() {
		return that
	}

	next := that
	next.Board[that.LastMove.Position] = EmptyCell
	next.CurrentMark = that.LastMove.Mark
	next.LastMove = nil

	return next
}
