package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Player is one of the two participants. Values are created once at startup and never change.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}

func NewPlayer(name string, mark Mark) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, apperror.ErrInvalidName
	}

	if !mark.isSingleGlyph() {
		return Player{}, fmt.Errorf("%w: player %s needs a single printable character, got %q",
			apperror.ErrInvalidMark, name, mark)
	}

	return Player{Name: name, Mark: mark}, nil
}

// Is - players are identified by their mark, not by name.
func (that Player) Is(other Player) bool {
	return that.Mark == other.Mark
}

func (that Player) String() string {
	return fmt.Sprintf("%s [%s]", that.Name, that.Mark)
}
