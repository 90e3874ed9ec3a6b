package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"

	alertFormat = "Slot %s is either taken or invalid."
	drawMessage = "Draw!"
)

// Score is the tally of finished rounds for the lifetime of the process.
type Score struct {
	First  int
	Second int
	Draws  int
}

// GameController runs rounds between two fixed players on a single board.
type GameController struct {
	logger *slog.Logger

	board  *entity.Board
	first  entity.Player
	second entity.Player

	turn   entity.Player
	winner entity.Player
	status Status
	alert  string
	score  Score
}

func NewGameController(logger *slog.Logger, board *entity.Board, first, second entity.Player) (*GameController, error) {
	if first.Is(second) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrDuplicateMark, first.Mark)
	}

	controller := &GameController{
		logger: logger.With("component", "game_controller"),
		board:  board,
		first:  first,
		second: second,
	}
	controller.NewRound()

	return controller, nil
}

// NewRound - clears the board and the round flags. The first player always opens the round.
func (that *GameController) NewRound() {
	that.board.Reset()
	that.turn = that.first
	that.winner = entity.Player{}
	that.status = StatusOngoing
	that.alert = ""
}

// MakeTurn - places the active player's mark at the 1-based position.
// A rejected move keeps the same player active and leaves a message in Alert.
func (that *GameController) MakeTurn(position int) error {
	return that.makeTurn(position, strconv.Itoa(position))
}

// MakeTurnFromInput - same as MakeTurn for a raw line typed by the player.
func (that *GameController) MakeTurnFromInput(raw string) error {
	token := strings.TrimSpace(raw)

	position, err := strconv.Atoi(token)
	if err != nil {
		if that.IsFinished() {
			return apperror.ErrGameFinished
		}

		that.reject(token, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, token))

		return fmt.Errorf("invalid turn: %w: %q", apperror.ErrInvalidInput, token)
	}

	return that.makeTurn(position, token)
}

func (that *GameController) makeTurn(position int, token string) error {
	log := that.logger.With("method", "MakeTurn", "player", that.turn.Name, "position", position)

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := that.board.Place(that.turn.Mark, position); err != nil {
		that.reject(token, err)

		return fmt.Errorf("invalid turn: %w", err)
	}

	that.alert = ""
	log.Debug("turn accepted")

	that.updateGameStatus(that.turn)

	return nil
}

func (that *GameController) reject(token string, err error) {
	that.alert = fmt.Sprintf(alertFormat, token)

	that.logger.Debug("turn rejected", "player", that.turn.Name, "input", token, "error", err)
}

// updateGameStatus - checks the board after a successful move by player.
func (that *GameController) updateGameStatus(player entity.Player) {
	if that.board.CheckWin() {
		that.status = StatusWon
		that.winner = player
		if player.Is(that.first) {
			that.score.First++
		} else {
			that.score.Second++
		}

		that.logger.Info("round won", "winner", player.Name, "mark", player.Mark)

		return
	}

	that.turn = that.toggle(player)

	if that.board.IsFull() {
		that.status = StatusDraw
		that.score.Draws++

		that.logger.Info("round drawn")
	}
}

// toggle - returns the other fixed player. Identity is decided by the mark.
func (that *GameController) toggle(player entity.Player) entity.Player {
	if player.Is(that.first) {
		return that.second
	}

	return that.first
}

func (that *GameController) Active() entity.Player {
	return that.turn
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

func (that *GameController) Status() Status {
	return that.status
}

func (that *GameController) IsFinished() bool {
	return that.status != StatusOngoing
}

// Winner - returns the player who completed a line in the current round.
func (that *GameController) Winner() (entity.Player, bool) {
	return that.winner, that.status == StatusWon
}

// Alert - message left by the last rejected move, empty after a successful one.
func (that *GameController) Alert() string {
	return that.alert
}

// Outcome - returns the end-of-round message, empty while the round is ongoing.
func (that *GameController) Outcome() string {
	switch that.status {
	case StatusWon:
		return that.winner.Name + " has won!"
	case StatusDraw:
		return drawMessage
	default:
		return ""
	}
}

func (that *GameController) Score() Score {
	return that.score
}

// ScoreLine - formats the tally, e.g. "Player 1 [O] 2 - 1 Player 2 [X], draws: 0".
func (that *GameController) ScoreLine() string {
	return fmt.Sprintf("%s %d - %d %s, draws: %d",
		that.first, that.score.First, that.score.Second, that.second, that.score.Draws)
}

// IsRejected reports whether err is a move the player may retry.
func IsRejected(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidInput)
}
