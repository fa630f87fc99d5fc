package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/transport/cli"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	random := pkg.NewRandom(conf.Random.Seed)
	gameController := tictactoe.NewGameController(logger, random)
	gameManager := usecase.NewGameManager(logger, gameController, random, usecase.BotDelay{
		Min: conf.Bot.MinDelay,
		Max: conf.Bot.MaxDelay,
	})
	defer gameManager.Close()

	// run terminal session
	cliErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting terminal session")
		cliServer := cli.New(logger, gameManager, os.Stdout, conf.Terminal.NoColor)
		cliErrCh <- cliServer.Serve(ctx, os.Stdin)
	}()

	select {
	case err := <-cliErrCh:
		if err != nil {
			return fmt.Errorf("terminal session error: %w", err)
		}

		log.Info("Terminal session finished")

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
