package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
)

const maxWaitDuration = 10 * time.Second

// Seed keeps randomized tests reproducible.
const Seed = 42

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Random pkg.Random
}

// New returns a context bounded by maxWaitDuration and a suite with a seeded
// random source. Logs are discarded unless TICTACTOE_TEST_LOGS is set.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if os.Getenv("TICTACTOE_TEST_LOGS") != "" {
		out = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Random: pkg.NewRandom(Seed),
	}
}
