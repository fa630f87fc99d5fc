package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrNoCandidateMove = errors.New("no candidate move")

	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)

	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrMarkNotExpected  = errors.New("mark choice is not expected")
	ErrUnknownMark      = errors.New("unknown mark")
)
