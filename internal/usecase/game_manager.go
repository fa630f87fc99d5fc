package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
)

const updatesBufferSize = 16

type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseAwaitingMark Phase = "awaiting_mark"
	PhasePlaying      Phase = "playing"
	PhaseFinished     Phase = "finished"
)

const (
	InfoBotMoves   = "Bot moves."
	InfoYouMove    = "You move!"
	InfoTie        = "Tie!"
	InfoNewGame    = "Type new to start a game."
	InfoChooseMark = "Choose your mark: x or o."
)

// Snapshot is a copy of the driver state; holding it never blocks the driver.
type Snapshot struct {
	MatchID   string           `json:"match_id"`
	Phase     Phase            `json:"phase"`
	State     entity.GameState `json:"state"`
	HumanMark entity.Mark      `json:"human_mark"`
	BotMark   entity.Mark      `json:"bot_mark"`
	IsBotTurn bool             `json:"is_bot_turn"`
	Info      string           `json:"info"`
}

type gameController interface {
	NewGame(startingMark entity.Mark) (entity.GameState, error)
	PlaceMark(state entity.GameState, position int) (entity.GameState, entity.Result, error)
	UndoLastMove(state entity.GameState) entity.GameState
	ChooseMove(state entity.GameState, botMark entity.Mark, botMovesFirst bool) (int, error)
}

// BotDelay bounds the pause before each bot move.
type BotDelay struct {
	Min time.Duration
	Max time.Duration
}

// GameManager owns the single authoritative game of a human against the bot.
// Bot moves run on their own goroutine after a random delay and carry the
// match id and version they were scheduled for; anything that changes the
// board bumps the version, so a late bot result is dropped instead of applied.
type GameManager struct {
	logger     *slog.Logger
	controller gameController
	random     pkg.Random
	delay      BotDelay

	mu            sync.Mutex
	matchID       string
	version       uint64
	phase         Phase
	state         entity.GameState
	humanMark     entity.Mark
	botMark       entity.Mark
	botMovesFirst bool
	isBotTurn     bool
	cancelBot     context.CancelFunc
	closed        bool

	wg        sync.WaitGroup
	updates   chan Snapshot
	closeOnce sync.Once
}

func NewGameManager(logger *slog.Logger, controller gameController, random pkg.Random, delay BotDelay) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		controller: controller,
		random:     random,
		delay:      delay,

		phase:   PhaseIdle,
		updates: make(chan Snapshot, updatesBufferSize),
	}
}

// PrepareNewGame drops the current match and flips a coin for who begins.
// When the bot begins it also picks its mark and its first move is
// scheduled; otherwise the manager waits for ChooseMark.
func (that *GameManager) PrepareNewGame(ctx context.Context) (Snapshot, error) {
	log := that.logger.With("method", "PrepareNewGame")

	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelPendingLocked()

	that.matchID = pkg.GenerateMatchID()
	that.version = 0
	that.state = entity.GameState{}
	that.humanMark, that.botMark = entity.EmptyCell, entity.EmptyCell
	that.botMovesFirst, that.isBotTurn = false, false

	if !that.random.Bool() {
		that.phase = PhaseAwaitingMark
		log.Info("new game prepared", "match_id", that.matchID, "starts", "human")

		return that.snapshotLocked(), nil
	}

	botMark := entity.Circle
	if that.random.Bool() {
		botMark = entity.Cross
	}

	if err := that.startLocked(botMark.Opponent(), botMark, botMark); err != nil {
		return that.snapshotLocked(), err
	}

	log.Info("new game prepared", "match_id", that.matchID, "starts", "bot", "bot_mark", that.botMark, "human_mark", that.humanMark)

	that.scheduleBotMoveLocked(ctx)

	return that.snapshotLocked(), nil
}

// ChooseMark starts the pending match with the human playing mark and moving first.
func (that *GameManager) ChooseMark(_ context.Context, mark entity.Mark) (Snapshot, error) {
	log := that.logger.With("method", "ChooseMark")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase != PhaseAwaitingMark {
		return that.snapshotLocked(), apperror.ErrMarkNotExpected
	}

	if !mark.IsPlayer() {
		return that.snapshotLocked(), fmt.Errorf("%w: %q", apperror.ErrUnknownMark, mark)
	}

	if err := that.startLocked(mark, mark.Opponent(), mark); err != nil {
		return that.snapshotLocked(), err
	}

	log.Info("mark chosen", "match_id", that.matchID, "human_mark", that.humanMark, "bot_mark", that.botMark)

	return that.snapshotLocked(), nil
}

// HumanMove places the human mark on position and hands the turn to the bot.
func (that *GameManager) HumanMove(ctx context.Context, position int) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch that.phase {
	case PhaseIdle, PhaseAwaitingMark:
		return that.snapshotLocked(), apperror.ErrGameIsNotStarted
	case PhaseFinished:
		return that.snapshotLocked(), apperror.ErrGameFinished
	case PhasePlaying:
	}

	if that.isBotTurn {
		return that.snapshotLocked(), apperror.ErrNotYourTurn
	}

	if err := that.placeLocked(position); err != nil {
		return that.snapshotLocked(), fmt.Errorf("failed to make turn: %w", err)
	}

	if that.phase == PhasePlaying {
		that.scheduleBotMoveLocked(ctx)
	}

	return that.snapshotLocked(), nil
}

// Undo reverts the last ply and gives the turn to whoever made it. Undoing
// the human move cancels the pending bot move; undoing the bot move
// schedules a new one.
func (that *GameManager) Undo(ctx context.Context) (Snapshot, error) {
	log := that.logger.With("method", "Undo")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase != PhasePlaying {
		return that.snapshotLocked(), apperror.ErrGameIsNotStarted
	}

	if that.state.LastMove == nil {
		return that.snapshotLocked(), nil
	}

	undone := *that.state.LastMove
	that.state = that.controller.UndoLastMove(that.state)
	that.version++
	that.isBotTurn = that.state.CurrentMark == that.botMark

	log.Info("move undone", "match_id", that.matchID, "position", undone.Position, "mark", undone.Mark, "version", that.version)

	if that.isBotTurn {
		that.scheduleBotMoveLocked(ctx)
	} else {
		that.cancelPendingLocked()
	}

	return that.snapshotLocked(), nil
}

func (that *GameManager) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshotLocked()
}

// Updates delivers a snapshot after every bot move. Updates are dropped
// while the buffer is full.
func (that *GameManager) Updates() <-chan Snapshot {
	return that.updates
}

// Close cancels pending bot work, waits for it to stop and closes Updates.
func (that *GameManager) Close() {
	that.closeOnce.Do(func() {
		that.mu.Lock()
		that.closed = true
		that.cancelPendingLocked()
		that.mu.Unlock()

		that.wg.Wait()
		close(that.updates)
	})
}

func (that *GameManager) startLocked(humanMark, botMark, startingMark entity.Mark) error {
	state, err := that.controller.NewGame(startingMark)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.state = state
	that.humanMark = humanMark
	that.botMark = botMark
	that.botMovesFirst = startingMark == botMark
	that.isBotTurn = that.botMovesFirst
	that.phase = PhasePlaying

	return nil
}

func (that *GameManager) placeLocked(position int) error {
	log := that.logger.With("method", "placeLocked")

	mark := that.state.CurrentMark

	next, result, err := that.controller.PlaceMark(that.state, position)
	if err != nil {
		return err
	}

	that.state = next
	that.version++
	that.isBotTurn = next.CurrentMark == that.botMark

	log.Info("mark placed",
		"match_id", that.matchID,
		"position", position,
		"mark", mark,
		"ply", entity.BoardSize-next.Board.Count(entity.EmptyCell),
	)

	if result.IsTerminal() {
		that.phase = PhaseFinished
		that.isBotTurn = false
		that.cancelPendingLocked()

		log.Info("game finished", "match_id", that.matchID, "result", result)
	}

	return nil
}

func (that *GameManager) scheduleBotMoveLocked(ctx context.Context) {
	log := that.logger.With("method", "scheduleBotMove")

	that.cancelPendingLocked()

	if that.closed {
		return
	}

	delay := that.thinkingDelay()
	botCtx, cancel := context.WithCancel(ctx)
	that.cancelBot = cancel

	log.Debug("bot move scheduled", "match_id", that.matchID, "version", that.version, "delay", delay)

	that.wg.Add(1)
	go that.runBotMove(botCtx, that.matchID, that.version, delay)
}

func (that *GameManager) runBotMove(ctx context.Context, matchID string, version uint64, delay time.Duration) {
	defer that.wg.Done()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	that.applyBotMove(matchID, version)
}

func (that *GameManager) applyBotMove(matchID string, version uint64) {
	log := that.logger.With("method", "applyBotMove")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || matchID != that.matchID || version != that.version || !that.isBotTurn || that.phase != PhasePlaying {
		log.Info("stale bot decision discarded", "match_id", matchID, "version", version, "current_version", that.version)
		return
	}

	position, err := that.controller.ChooseMove(that.state, that.botMark, that.botMovesFirst)
	if err != nil {
		log.Error("bot failed to choose move", "match_id", matchID, "error", err)
		return
	}

	if err = that.placeLocked(position); err != nil {
		log.Error("bot failed to make turn", "match_id", matchID, "position", position, "error", err)
		return
	}

	log.Info("bot decision applied", "match_id", matchID, "position", position)

	that.publishLocked()
}

func (that *GameManager) publishLocked() {
	select {
	case that.updates <- that.snapshotLocked():
	default:
		that.logger.Warn("update dropped, buffer is full", "method", "publish", "match_id", that.matchID)
	}
}

func (that *GameManager) cancelPendingLocked() {
	if that.cancelBot != nil {
		that.cancelBot()
		that.cancelBot = nil
	}
}

// thinkingDelay draws whole milliseconds uniformly from the configured range.
func (that *GameManager) thinkingDelay() time.Duration {
	low := int(that.delay.Min.Milliseconds())
	high := int(that.delay.Max.Milliseconds())

	return time.Duration(that.random.IntInRange(low, high)) * time.Millisecond
}

func (that *GameManager) snapshotLocked() Snapshot {
	return Snapshot{
		MatchID:   that.matchID,
		Phase:     that.phase,
		State:     that.state,
		HumanMark: that.humanMark,
		BotMark:   that.botMark,
		IsBotTurn: that.isBotTurn,
		Info:      that.infoLocked(),
	}
}

func (that *GameManager) infoLocked() string {
	switch that.phase {
	case PhaseAwaitingMark:
		return InfoChooseMark
	case PhasePlaying:
		if that.isBotTurn {
			return InfoBotMoves
		}

		return InfoYouMove
	case PhaseFinished:
		if that.state.Winner == entity.ResultTie {
			return InfoTie
		}

		return that.state.Winner.Mark().Title() + " has won the match!"
	default:
		return InfoNewGame
	}
}
