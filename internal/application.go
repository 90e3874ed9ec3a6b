package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/console/screen"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// RunApp - runs the game on the process console until the players stop or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the players, board, controller and console session over in and out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	first, second, err := newPlayers(conf)
	if err != nil {
		return fmt.Errorf("could not create players: %w", err)
	}

	clearer, err := screen.New(conf.ClearScreen, out)
	if err != nil {
		return fmt.Errorf("could not create screen clearer: %w", err)
	}

	gameController, err := tictactoe.NewGameController(logger, entity.NewBoard(), first, second)
	if err != nil {
		return fmt.Errorf("could not create game controller: %w", err)
	}

	session := console.NewSession(logger, gameController, in, out, clearer)

	// the session blocks on input reads, so it runs apart from the signal watcher
	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- session.Run(ctx)
	}()

	select {
	case err = <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newPlayers(conf *config.Config) (entity.Player, entity.Player, error) {
	first, err := entity.NewPlayer(conf.Players.First.Name, entity.Mark(conf.Players.First.Mark))
	if err != nil {
		return entity.Player{}, entity.Player{}, fmt.Errorf("first player: %w", err)
	}

	second, err := entity.NewPlayer(conf.Players.Second.Name, entity.Mark(conf.Players.Second.Mark))
	if err != nil {
		return entity.Player{}, entity.Player{}, fmt.Errorf("second player: %w", err)
	}

	return first, second, nil
}
