package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Board  *entity.Board
	First  entity.Player
	Second entity.Player
}

// New - returns a context bounded by maxWaitDuration, a discarding logger, a fresh board
// and the two default players ("Player 1" with O, "Player 2" with X).
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	first, err := entity.NewPlayer("Player 1", "O")
	if err != nil {
		t.Fatalf("could not create first player: %v", err)
	}

	second, err := entity.NewPlayer("Player 2", "X")
	if err != nil {
		t.Fatalf("could not create second player: %v", err)
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Board:  entity.NewBoard(),
		First:  first,
		Second: second,
	}
}
