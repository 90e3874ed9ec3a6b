package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/console/screen"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	inputPrompt  = "Input: "
	replayPrompt = "Play again? (Y/N) : "

	// longer lines are cut to this many bytes, the rest up to the newline is dropped
	maxLineLength = 256
)

type gameController interface {
	MakeTurnFromInput(raw string) error
	NewRound()

	Board() *entity.Board
	Active() entity.Player
	IsFinished() bool
	Alert() string
	Outcome() string
	ScoreLine() string
}

// Session drives rounds on a line based console until the players decline a replay.
type Session struct {
	logger *slog.Logger

	game    gameController
	clearer screen.Clearer
	reader  *bufio.Reader
	out     io.Writer
}

func NewSession(logger *slog.Logger, game gameController, in io.Reader, out io.Writer, clearer screen.Clearer) *Session {
	return &Session{
		logger:  logger.With("component", "console"),
		game:    game,
		clearer: clearer,
		reader:  bufio.NewReaderSize(in, maxLineLength),
		out:     out,
	}
}

// Run - plays until the replay prompt is declined or input ends. Both return nil.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	log.Info("session started")

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		if that.game.IsFinished() {
			again, err := that.finishRound()
			if err != nil {
				return err
			}

			if !again {
				log.Info("session finished")
				return nil
			}

			that.game.NewRound()
			continue
		}

		if err := that.drawTurn(); err != nil {
			return err
		}

		line, ok, err := that.readLine()
		if err != nil {
			return err
		}
		if !ok {
			log.Info("input closed")
			return nil
		}

		if err = that.game.MakeTurnFromInput(line); err != nil && !tictactoe.IsRejected(err) {
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}
}

// drawTurn - prints the guide, the playing field, the pending alert and the turn prompt.
func (that *Session) drawTurn() error {
	that.clear()

	board := that.game.Board()
	active := that.game.Active()

	var printed strings.Builder

	printed.WriteString("Guide\n\n")
	printed.WriteString(board.Render(false))
	printed.WriteString("\n\n\n")

	printed.WriteString("Playing Field\n\n")
	printed.WriteString(board.Render(true))
	printed.WriteString("\n")

	if alert := that.game.Alert(); alert != "" {
		printed.WriteString(alert)
		printed.WriteString("\n\n")
	}

	fmt.Fprintf(&printed, "Turn of %s [%s]\n\n", active.Name, active.Mark)
	printed.WriteString(inputPrompt)

	return that.write(printed.String())
}

// finishRound - shows the final board and outcome, then asks for a replay.
func (that *Session) finishRound() (bool, error) {
	that.clear()

	var printed strings.Builder

	printed.WriteString(that.game.Board().Render(true))
	printed.WriteString("\n")
	printed.WriteString(that.game.Outcome())
	printed.WriteString("\n")
	printed.WriteString(that.game.ScoreLine())
	printed.WriteString("\n\n")
	printed.WriteString(replayPrompt)

	if err := that.write(printed.String()); err != nil {
		return false, err
	}

	answer, ok, err := that.readLine()
	if err != nil || !ok {
		return false, err
	}

	return isYes(answer), nil
}

func (that *Session) clear() {
	if err := that.clearer.Clear(); err != nil {
		that.logger.Debug("screen was not cleared", "error", err)
	}
}

func (that *Session) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}

// readLine - returns false once the input is exhausted. An oversized line is truncated, not an error.
func (that *Session) readLine() (string, bool, error) {
	chunk, err := that.reader.ReadSlice('\n')
	line := string(chunk)

	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = that.reader.ReadSlice('\n')
	}

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", false, nil
		}
	default:
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), true, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
