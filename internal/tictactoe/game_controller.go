package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
)

// GameController is the single entry point into the rules. It keeps no game
// of its own: every call takes a snapshot and returns a new one.
type GameController struct {
	logger *slog.Logger
	random pkg.Random
}

func NewGameController(logger *slog.Logger, random pkg.Random) *GameController {
	return &GameController{
		logger: logger.With("component", "tictactoe"),
		random: random,
	}
}

func (that *GameController) NewGame(startingMark entity.Mark) (entity.GameState, error) {
	state, err := entity.NewGame(startingMark)
	if err != nil {
		return state, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "method", "NewGame", "starting_mark", startingMark)

	return state, nil
}

// PlaceMark applies the move for the side to play and reports the result of
// the updated board.
func (that *GameController) PlaceMark(state entity.GameState, position int) (entity.GameState, entity.Result, error) {
	log := that.logger.With("method", "PlaceMark")

	next, err := state.PlaceMark(position)
	if err != nil {
		log.Debug("move rejected", "position", position, "error", err)

		return state, state.Winner, fmt.Errorf("invalid turn: %w", err)
	}

	log.Debug("mark placed", "position", position, "mark", state.CurrentMark, "winner", next.Winner)

	return next, next.Winner, nil
}

func (that *GameController) UndoLastMove(state entity.GameState) entity.GameState {
	next := state.UndoLastMove()

	if state.LastMove != nil && next.LastMove == nil {
		that.logger.Debug("move undone", "method", "UndoLastMove", "position", state.LastMove.Position)
	}

	return next
}

// ChooseMove asks the strategy for a cell for botMark on the current board.
func (that *GameController) ChooseMove(state entity.GameState, botMark entity.Mark, botMovesFirst bool) (int, error) {
	position, err := ChooseMove(state.Board, botMark, botMark.Opponent(), botMovesFirst, that.random)
	if err != nil {
		return position, fmt.Errorf("failed to choose move: %w", err)
	}

	that.logger.Debug("move chosen", "method", "ChooseMove", "mark", botMark, "position", position)

	return position, nil
}
