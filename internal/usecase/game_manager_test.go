package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	mockedPkg "github.com/rocketscienceinc/tictactoe-solo/mocks/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/testing/suite"
)

var (
	instantBot = BotDelay{}
	sleepyBot  = BotDelay{Min: time.Hour, Max: time.Hour}
)

// newManager wires a manager whose random source answers every range with
// its lower bound, so bot delays and tie-breaks are predictable.
func newManager(t *testing.T, delay BotDelay) (context.Context, *GameManager, *mockedPkg.MockRandom) {
	t.Helper()

	rnd := mockedPkg.NewMockRandom(t)
	rnd.EXPECT().
		IntInRange(mock.Anything, mock.Anything).
		RunAndReturn(func(low, _ int) int { return low }).
		Maybe()

	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger, tictactoe.NewGameController(st.Logger, rnd), rnd, delay)
	t.Cleanup(manager.Close)

	return ctx, manager, rnd
}

func startAsHuman(ctx context.Context, t *testing.T, manager *GameManager, rnd *mockedPkg.MockRandom, mark entity.Mark) {
	t.Helper()

	rnd.EXPECT().Bool().Return(false).Once()

	_, err := manager.PrepareNewGame(ctx)
	require.NoError(t, err)

	_, err = manager.ChooseMark(ctx, mark)
	require.NoError(t, err)
}

func waitUpdate(t *testing.T, manager *GameManager) Snapshot {
	t.Helper()

	select {
	case snapshot := <-manager.Updates():
		return snapshot
	case <-time.After(time.Second):
		t.Fatal("bot did not move")
		return Snapshot{}
	}
}

func TestGameManager_PrepareNewGame(t *testing.T) {
	t.Run("Bot begins and plays a corner", func(t *testing.T) {
		// Given: coin flips saying the bot begins with crosses
		ctx, manager, rnd := newManager(t, instantBot)
		rnd.EXPECT().Bool().Return(true).Once()
		rnd.EXPECT().Bool().Return(true).Once()

		// When: a new game is prepared
		snapshot, err := manager.PrepareNewGame(ctx)

		// Then: the bot owns the first turn
		require.NoError(t, err)
		assert.NotEmpty(t, snapshot.MatchID)
		assert.Equal(t, PhasePlaying, snapshot.Phase)
		assert.Equal(t, entity.Cross, snapshot.BotMark)
		assert.Equal(t, entity.Circle, snapshot.HumanMark)
		assert.Equal(t, entity.Cross, snapshot.State.CurrentMark)
		assert.True(t, snapshot.IsBotTurn)
		assert.Equal(t, InfoBotMoves, snapshot.Info)

		// Then: the bot move arrives as an update
		update := waitUpdate(t, manager)
		assert.Equal(t, snapshot.MatchID, update.MatchID)
		assert.Equal(t, entity.Cross, update.State.Board[0])
		assert.False(t, update.IsBotTurn)
		assert.Equal(t, InfoYouMove, update.Info)
	})

	t.Run("Human begins after choosing a mark", func(t *testing.T) {
		// Given: a coin flip saying the human begins
		ctx, manager, rnd := newManager(t, instantBot)
		rnd.EXPECT().Bool().Return(false).Once()

		// When: a new game is prepared
		snapshot, err := manager.PrepareNewGame(ctx)

		// Then: the manager waits for a mark and refuses moves
		require.NoError(t, err)
		assert.Equal(t, PhaseAwaitingMark, snapshot.Phase)
		assert.Equal(t, InfoChooseMark, snapshot.Info)

		_, err = manager.HumanMove(ctx, 0)
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)

		// When: the human picks circles
		snapshot, err = manager.ChooseMark(ctx, entity.Circle)

		// Then: circles move first and it is the human's turn
		require.NoError(t, err)
		assert.Equal(t, PhasePlaying, snapshot.Phase)
		assert.Equal(t, entity.Circle, snapshot.HumanMark)
		assert.Equal(t, entity.Cross, snapshot.BotMark)
		assert.Equal(t, entity.Circle, snapshot.State.CurrentMark)
		assert.False(t, snapshot.IsBotTurn)
		assert.Equal(t, InfoYouMove, snapshot.Info)
	})

	t.Run("Drops the pending bot move of the previous match", func(t *testing.T) {
		// Given: a match where the bot is still thinking
		ctx, manager, rnd := newManager(t, sleepyBot)
		rnd.EXPECT().Bool().Return(true).Once()
		rnd.EXPECT().Bool().Return(false).Once()
		first, err := manager.PrepareNewGame(ctx)
		require.NoError(t, err)
		require.True(t, first.IsBotTurn)

		// When: another game is prepared
		rnd.EXPECT().Bool().Return(false).Once()
		second, err := manager.PrepareNewGame(ctx)

		// Then: the new match has its own id and nothing is pending
		require.NoError(t, err)
		assert.NotEqual(t, first.MatchID, second.MatchID)
		assert.Equal(t, PhaseAwaitingMark, second.Phase)
		assert.Equal(t, entity.Board{}, second.State.Board)

		manager.mu.Lock()
		assert.Nil(t, manager.cancelBot)
		manager.mu.Unlock()

		// Then: a late result for the first match is ignored
		manager.applyBotMove(first.MatchID, 0)
		assert.Equal(t, second, manager.Snapshot())
	})
}

func TestGameManager_ChooseMark(t *testing.T) {
	t.Run("Not expected before a game is prepared", func(t *testing.T) {
		ctx, manager, _ := newManager(t, instantBot)

		_, err := manager.ChooseMark(ctx, entity.Cross)

		require.ErrorIs(t, err, apperror.ErrMarkNotExpected)
	})

	t.Run("Rejects an empty mark", func(t *testing.T) {
		ctx, manager, rnd := newManager(t, instantBot)
		rnd.EXPECT().Bool().Return(false).Once()
		_, err := manager.PrepareNewGame(ctx)
		require.NoError(t, err)

		snapshot, err := manager.ChooseMark(ctx, entity.EmptyCell)

		require.ErrorIs(t, err, apperror.ErrUnknownMark)
		assert.Equal(t, PhaseAwaitingMark, snapshot.Phase)
	})
}

func TestGameManager_HumanMove(t *testing.T) {
	t.Run("Bot answers with the center", func(t *testing.T) {
		// Given: the human plays crosses
		ctx, manager, rnd := newManager(t, instantBot)
		startAsHuman(ctx, t, manager, rnd, entity.Cross)

		// When: the human takes a corner
		snapshot, err := manager.HumanMove(ctx, 0)

		// Then: the bot gets the turn and replies in the center
		require.NoError(t, err)
		assert.True(t, snapshot.IsBotTurn)
		assert.Equal(t, InfoBotMoves, snapshot.Info)

		update := waitUpdate(t, manager)
		assert.Equal(t, entity.Circle, update.State.Board[4])
		assert.Equal(t, InfoYouMove, update.Info)
	})

	t.Run("Rejects moves during the bot turn", func(t *testing.T) {
		// Given: a human move the bot has not answered yet
		ctx, manager, rnd := newManager(t, sleepyBot)
		startAsHuman(ctx, t, manager, rnd, entity.Cross)
		_, err := manager.HumanMove(ctx, 0)
		require.NoError(t, err)

		// When: the human plays again
		snapshot, err := manager.HumanMove(ctx, 1)

		// Then: it is the bot's turn
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.EmptyCell, snapshot.State.Board[1])
	})

	t.Run("Invalid cells leave the game untouched", func(t *testing.T) {
		// Given: the human at X on 0 and the bot at O on 4
		ctx, manager, rnd := newManager(t, sleepyBot)
		startAsHuman(ctx, t, manager, rnd, entity.Cross)
		snapshot, err := manager.HumanMove(ctx, 0)
		require.NoError(t, err)
		manager.applyBotMove(snapshot.MatchID, 1)
		before := manager.Snapshot()
		require.Equal(t, entity.Circle, before.State.Board[4])

		// When: the human plays outside the board and then an occupied cell
		_, errOutside := manager.HumanMove(ctx, 9)
		_, errOccupied := manager.HumanMove(ctx, 4)

		// Then: both are invalid moves and nothing changed
		require.ErrorIs(t, errOutside, apperror.ErrInvalidCell)
		require.ErrorIs(t, errOccupied, apperror.ErrCellOccupied)
		require.ErrorIs(t, errOccupied, apperror.ErrInvalidMove)
		assert.Equal(t, before, manager.Snapshot())
	})

	t.Run("Bot completes its line and the match ends", func(t *testing.T) {
		// Given: the human plays crosses
		ctx, manager, rnd := newManager(t, instantBot)
		startAsHuman(ctx, t, manager, rnd, entity.Cross)

		// When: the human ignores the threat on the middle row
		expectedReplies := map[int]int{0: 4, 1: 2, 6: 3, 8: 5}
		var update Snapshot
		for _, position := range []int{0, 1, 6, 8} {
			_, err := manager.HumanMove(ctx, position)
			require.NoError(t, err)

			update = waitUpdate(t, manager)
			require.Equal(t, entity.Circle, update.State.Board[expectedReplies[position]])
		}

		// Then: circles have won and the match is over
		assert.Equal(t, PhaseFinished, update.Phase)
		assert.Equal(t, entity.ResultCircle, update.State.Winner)
		assert.Equal(t, "Circles has won the match!", update.Info)
		assert.False(t, update.IsBotTurn)

		_, err := manager.HumanMove(ctx, 7)
		require.ErrorIs(t, err, apperror.ErrGameFinished)

		_, err = manager.Undo(ctx)
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})
}

func TestGameManager_Undo(t *testing.T) {
	t.Run("Rejected without a match", func(t *testing.T) {
		ctx, manager, _ := newManager(t, instantBot)

		_, err := manager.Undo(ctx)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Undoing the human move cancels the bot", func(t *testing.T) {
		// Given: a human move with the bot still thinking
		ctx, manager, rnd := newManager(t, sleepyBot)
		startAsHuman(ctx, t, manager, rnd, entity.Cross)
		moved, err := manager.HumanMove(ctx, 0)
		require.NoError(t, err)

		// When: the move is undone
		snapshot, err := manager.Undo(ctx)

		// Then: the board is empty again and the human moves
		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, snapshot.State.Board)
		assert.Equal(t, entity.Cross, snapshot.State.CurrentMark)
		assert.False(t, snapshot.IsBotTurn)
		assert.Equal(t, InfoYouMove, snapshot.Info)

		manager.mu.Lock()
		assert.Nil(t, manager.cancelBot)
		manager.mu.Unlock()

		// Then: the decision scheduled before the undo is stale
		manager.applyBotMove(moved.MatchID, 1)
		assert.Equal(t, snapshot, manager.Snapshot())

		// Then: a second undo has nothing to revert
		again, err := manager.Undo(ctx)
		require.NoError(t, err)
		assert.Equal(t, snapshot, again)
	})

	t.Run("Undoing the bot move hands the turn back to the bot", func(t *testing.T) {
		// Given: the human at X on 0 and the bot at O on 4
		ctx, manager, rnd := newManager(t, instantBot)
		startAsHuman(ctx, t, manager, rnd, entity.Cross)
		_, err := manager.HumanMove(ctx, 0)
		require.NoError(t, err)
		waitUpdate(t, manager)

		// When: the bot move is undone
		snapshot, err := manager.Undo(ctx)

		// Then: the bot owns the turn and plays again
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, snapshot.State.Board[4])
		assert.True(t, snapshot.IsBotTurn)
		assert.Equal(t, InfoBotMoves, snapshot.Info)

		update := waitUpdate(t, manager)
		assert.Equal(t, entity.Circle, update.State.Board[4])
		assert.False(t, update.IsBotTurn)
	})
}

func TestGameManager_Internals(t *testing.T) {
	t.Run("Thinking delay is drawn in milliseconds", func(t *testing.T) {
		_, st := suite.New(t)
		rnd := mockedPkg.NewMockRandom(t)
		rnd.EXPECT().IntInRange(1000, 3000).Return(1500).Once()
		manager := NewGameManager(st.Logger, tictactoe.NewGameController(st.Logger, rnd), rnd,
			BotDelay{Min: time.Second, Max: 3 * time.Second})

		assert.Equal(t, 1500*time.Millisecond, manager.thinkingDelay())
	})

	t.Run("Full update buffer never blocks", func(t *testing.T) {
		_, manager, _ := newManager(t, instantBot)

		manager.mu.Lock()
		for range updatesBufferSize + 1 {
			manager.publishLocked()
		}
		manager.mu.Unlock()

		assert.Len(t, manager.updates, updatesBufferSize)
	})

	t.Run("Close is idempotent and closes updates", func(t *testing.T) {
		_, manager, _ := newManager(t, instantBot)

		manager.Close()
		manager.Close()

		_, ok := <-manager.Updates()
		assert.False(t, ok)
	})
}
