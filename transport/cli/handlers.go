package cli

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context) error {
	snapshot, err := that.manager.PrepareNewGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to prepare game: %w", err)
	}

	that.printSnapshot(snapshot)

	return nil
}

func (that *Server) handleChooseMark(mark entity.Mark) func(context.Context) error {
	return func(ctx context.Context) error {
		snapshot, err := that.manager.ChooseMark(ctx, mark)
		if err != nil {
			return err
		}

		that.printSnapshot(snapshot)

		return nil
	}
}

// handleMove takes a 0-based position; cells are typed 1-based.
func (that *Server) handleMove(position int) func(context.Context) error {
	return func(ctx context.Context) error {
		snapshot, err := that.manager.HumanMove(ctx, position)
		if err != nil {
			return err
		}

		that.printSnapshot(snapshot)

		return nil
	}
}

func (that *Server) handleUndo(ctx context.Context) error {
	snapshot, err := that.manager.Undo(ctx)
	if err != nil {
		return err
	}

	that.printSnapshot(snapshot)

	return nil
}

func (that *Server) handleBoard(_ context.Context) error {
	that.printSnapshot(that.manager.Snapshot())

	return nil
}

func (that *Server) handleHelp(_ context.Context) error {
	that.printHelp()

	return nil
}

func (that *Server) handleQuit(_ context.Context) error {
	return errQuit
}
