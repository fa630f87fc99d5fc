package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

var ErrUnknownCommand = errors.New("unknown command")

// errQuit ends the command loop without being reported.
var errQuit = errors.New("quit")

type gameManager interface {
	PrepareNewGame(ctx context.Context) (usecase.Snapshot, error)
	ChooseMark(ctx context.Context, mark entity.Mark) (usecase.Snapshot, error)
	HumanMove(ctx context.Context, position int) (usecase.Snapshot, error)
	Undo(ctx context.Context) (usecase.Snapshot, error)
	Snapshot() usecase.Snapshot
	Updates() <-chan usecase.Snapshot
}

// Server plays one human against the bot over a line based terminal.
type Server struct {
	logger   *slog.Logger
	manager  gameManager
	handlers map[string]func(ctx context.Context) error

	mu     sync.Mutex
	output *termenv.Output
}

func New(logger *slog.Logger, manager gameManager, out io.Writer, noColor bool) *Server {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	server := &Server{
		logger:   logger.With("component", "cli"),
		manager:  manager,
		handlers: make(map[string]func(context.Context) error),
		output:   termenv.NewOutput(out, opts...),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["x"] = server.handleChooseMark(entity.Cross)
	server.handlers["o"] = server.handleChooseMark(entity.Circle)
	server.handlers["undo"] = server.handleUndo
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	for cell := 1; cell <= entity.BoardSize; cell++ {
		server.handlers[strconv.Itoa(cell)] = server.handleMove(cell - 1)
	}

	return server
}

// Serve reads commands from in until quit, EOF or ctx cancellation. Bot
// moves are printed as they arrive.
func (that *Server) Serve(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Serve")

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		that.watchUpdates(ctx)
	}()

	defer func() {
		cancel()
		wg.Wait()
	}()

	var scanErr error
	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		scanErr = scanner.Err()
	}()

	that.printHelp()
	that.printSnapshot(that.manager.Snapshot())

	for {
		select {
		case <-ctx.Done():
			log.Info("terminal closed", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if scanErr != nil {
					return fmt.Errorf("failed to read command: %w", scanErr)
				}

				log.Info("terminal closed", "reason", "eof")

				return nil
			}

			if err := that.dispatch(ctx, line); errors.Is(err, errQuit) {
				log.Info("terminal closed", "reason", "quit")
				return nil
			}
		}
	}
}

func (that *Server) dispatch(ctx context.Context, line string) error {
	log := that.logger.With("method", "dispatch")

	command := strings.ToLower(strings.TrimSpace(line))
	if command == "" {
		return nil
	}

	handler, ok := that.handlers[command]
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownCommand, command)
		that.printError(err)

		return err
	}

	if err := handler(ctx); err != nil {
		if errors.Is(err, errQuit) {
			return err
		}

		log.Debug("command failed", "command", command, "error", err)
		that.printError(err)

		return err
	}

	return nil
}

func (that *Server) watchUpdates(ctx context.Context) {
	updates := that.manager.Updates()

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-updates:
			if !ok {
				return
			}

			that.printSnapshot(snapshot)
		}
	}
}
