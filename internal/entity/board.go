package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	Size  = 3
	Cells = Size * Size

	columnSeparator = " | "
	rowPrefix       = "  "
	rowDivider      = "-------------"
)

// WinCombos lists every line of the board: rows, then columns, then diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 playing field stored in row-major order.
type Board struct {
	Cells [Cells]Cell `json:"cells"`
}

func NewBoard() *Board {
	return &Board{}
}

// Index - maps a zero-based row and column to the offset in Cells.
func Index(row, col int) int {
	return row*Size + col
}

// PositionToIndex - converts the 1-based position typed by a player into an offset in Cells.
func PositionToIndex(position int) (int, error) {
	if position < 1 || position > Cells {
		return 0, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, position)
	}

	return position - 1, nil
}

// Place - puts mark at the 1-based position. The board is left untouched when an error is returned.
func (that *Board) Place(mark Mark, position int) error {
	index, err := PositionToIndex(position)
	if err != nil {
		return err
	}

	if err = that.Cells[index].Occupy(mark); err != nil {
		return fmt.Errorf("%w: cell %d", err, position)
	}

	return nil
}

// Cell - returns a copy of the cell at the 1-based position.
func (that *Board) Cell(position int) (Cell, error) {
	index, err := PositionToIndex(position)
	if err != nil {
		return Cell{}, err
	}

	return that.Cells[index], nil
}

// Render - draws the board. With showMarks unset every cell shows its position number instead of the mark.
func (that *Board) Render(showMarks bool) string {
	var printed strings.Builder

	for row := 0; row < Size; row++ {
		tokens := make([]string, 0, Size)
		for col := 0; col < Size; col++ {
			index := Index(row, col)
			if showMarks {
				tokens = append(tokens, that.Cells[index].Token())
			} else {
				tokens = append(tokens, strconv.Itoa(index+1))
			}
		}

		printed.WriteString(rowPrefix)
		printed.WriteString(strings.Join(tokens, columnSeparator))
		printed.WriteString("\n")

		if row < Size-1 {
			printed.WriteString(rowDivider)
			printed.WriteString("\n")
		}
	}

	return printed.String()
}

func (that *Board) CheckWin() bool {
	return !that.Winner().IsEmpty()
}

// Winner - returns the mark of the first complete line, or EmptyMark when there is none.
func (that *Board) Winner() Mark {
	for _, combo := range WinCombos {
		if that.lineComplete(combo) {
			return that.Cells[combo[0]].Mark
		}
	}

	return EmptyMark
}

// lineComplete compares neighbouring cells of the line pair by pair.
func (that *Board) lineComplete(combo [3]int) bool {
	for i := 1; i < len(combo); i++ {
		previous, current := that.Cells[combo[i-1]], that.Cells[combo[i]]
		if previous.IsEmpty() || current.IsEmpty() || previous.Mark != current.Mark {
			return false
		}
	}

	return true
}

func (that *Board) IsFull() bool {
	return that.Occupied() == Cells
}

// Occupied - counts the cells holding a mark.
func (that *Board) Occupied() int {
	filled := 0
	for i := range that.Cells {
		if !that.Cells[i].IsEmpty() {
			filled++
		}
	}

	return filled
}

func (that *Board) Reset() {
	for i := range that.Cells {
		that.Cells[i].Reset()
	}
}
