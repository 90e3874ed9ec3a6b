package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	EmptyMark Mark = ""

	// blankToken is printed in place of an empty cell on the playing field.
	blankToken = " "
)

// Mark is the symbol a player leaves in a cell.
type Mark string

// IsEmpty reports whether the mark is blank. Whitespace-only marks count as blank.
func (that Mark) IsEmpty() bool {
	return strings.TrimSpace(string(that)) == ""
}

func (that Mark) String() string {
	return string(that)
}

// isSingleGlyph - the board cells are one column wide.
func (that Mark) isSingleGlyph() bool {
	if utf8.RuneCountInString(string(that)) != 1 {
		return false
	}

	r, _ := utf8.DecodeRuneInString(string(that))

	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// Cell is a single square of the board.
type Cell struct {
	Mark Mark `json:"mark"`
}

func (that *Cell) IsEmpty() bool {
	return that.Mark.IsEmpty()
}

// Occupy puts mark into the cell. A cell can be occupied once until it is reset.
func (that *Cell) Occupy(mark Mark) error {
	if mark.IsEmpty() {
		return apperror.ErrInvalidMark
	}

	if !that.IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.Mark = mark

	return nil
}

func (that *Cell) Reset() {
	that.Mark = EmptyMark
}

// Token - returns the text shown for the cell on the playing field.
func (that *Cell) Token() string {
	if that.IsEmpty() {
		return blankToken
	}

	return that.Mark.String()
}
