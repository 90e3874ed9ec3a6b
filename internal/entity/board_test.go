package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	markO Mark = "O"
	markX Mark = "X"
)

func boardFrom(t *testing.T, marks [Cells]Mark) *Board {
	t.Helper()

	board := NewBoard()
	for i, mark := range marks {
		board.Cells[i].Mark = mark
	}

	return board
}

func TestBoard_Place(t *testing.T) {
	t.Run("Every position accepts exactly one mark", func(t *testing.T) {
		for position := 1; position <= Cells; position++ {
			// Given: an empty board
			board := NewBoard()

			// When: a mark is placed at the position
			err := board.Place(markO, position)

			// Then: the move is accepted and the cell holds the mark
			require.NoError(t, err)
			cell, err := board.Cell(position)
			require.NoError(t, err)
			assert.Equal(t, markO, cell.Mark)
			assert.Equal(t, 1, board.Occupied())

			// When: the same position is played again before a reset
			err = board.Place(markX, position)

			// Then: the move is rejected and the first mark stays
			require.ErrorIs(t, err, apperror.ErrCellOccupied)
			cell, err = board.Cell(position)
			require.NoError(t, err)
			assert.Equal(t, markO, cell.Mark)
		}
	})

	t.Run("Positions outside 1-9 are rejected without mutating the board", func(t *testing.T) {
		for _, position := range []int{0, 10, -1, 100} {
			// Given: a board with one mark on it
			board := NewBoard()
			require.NoError(t, board.Place(markX, 5))
			before := *board

			// When: an out-of-range position is played
			err := board.Place(markO, position)

			// Then: ErrInvalidCell is returned and nothing changed
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
			assert.Equal(t, before, *board)
		}
	})

	t.Run("Empty mark is rejected", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: a blank mark is placed
		err := board.Place(" ", 1)

		// Then: ErrInvalidMark is returned and the cell stays empty
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Equal(t, 0, board.Occupied())
	})

	t.Run("Positions map to row-major offsets", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: position 6 is played
		require.NoError(t, board.Place(markX, 6))

		// Then: the mark lands on row 1, column 2
		assert.Equal(t, markX, board.Cells[Index(1, 2)].Mark)
	})
}

func TestBoard_Render(t *testing.T) {
	t.Run("Guide view shows the position numbers", func(t *testing.T) {
		// Given: a board with some marks
		board := boardFrom(t, [Cells]Mark{markX, "", "", "", markO, "", "", "", ""})

		// When: the guide is rendered
		guide := board.Render(false)

		// Then: marks are ignored and every cell shows its number
		expected := "  1 | 2 | 3\n" +
			"-------------\n" +
			"  4 | 5 | 6\n" +
			"-------------\n" +
			"  7 | 8 | 9\n"
		assert.Equal(t, expected, guide)
	})

	t.Run("Playing field shows marks and blanks", func(t *testing.T) {
		// Given: a board with some marks
		board := boardFrom(t, [Cells]Mark{markX, "", "", "", markO, "", "", "", markX})

		// When: the playing field is rendered
		field := board.Render(true)

		// Then: occupied cells show the mark and empty ones a blank
		expected := "  X |   |  \n" +
			"-------------\n" +
			"    | O |  \n" +
			"-------------\n" +
			"    |   | X\n"
		assert.Equal(t, expected, field)
	})

	t.Run("Rendering does not change the board", func(t *testing.T) {
		// Given: a board with a mark
		board := boardFrom(t, [Cells]Mark{"", markO, "", "", "", "", "", "", ""})
		before := *board

		// When: both views are rendered
		_ = board.Render(true)
		_ = board.Render(false)

		// Then: the board is unchanged
		assert.Equal(t, before, *board)
	})
}

func TestBoard_CheckWin(t *testing.T) {
	t.Run("Empty board has no winner", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.CheckWin())
		assert.Equal(t, EmptyMark, board.Winner())
	})

	t.Run("Every line wins once its third mark is placed", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: an empty board
			board := NewBoard()

			// When: the first two cells of the line are taken
			require.NoError(t, board.Place(markX, combo[0]+1))
			require.NoError(t, board.Place(markX, combo[1]+1))

			// Then: there is no win yet
			assert.False(t, board.CheckWin(), "line %v", combo)

			// When: the third cell is taken
			require.NoError(t, board.Place(markX, combo[2]+1))

			// Then: the line wins for X
			assert.True(t, board.CheckWin(), "line %v", combo)
			assert.Equal(t, markX, board.Winner(), "line %v", combo)
		}
	})

	t.Run("Mixed line does not win", func(t *testing.T) {
		// Given: a full top row with different marks
		board := boardFrom(t, [Cells]Mark{markX, markO, markX, "", "", "", "", "", ""})

		// Then: there is no win
		assert.False(t, board.CheckWin())
	})

	t.Run("Winner O on the anti-diagonal", func(t *testing.T) {
		// Given: O holds 3, 5 and 7
		board := boardFrom(t, [Cells]Mark{markX, markX, markO, "", markO, "", markO, "", markX})

		// Then: O is the winner
		assert.True(t, board.CheckWin())
		assert.Equal(t, markO, board.Winner())
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Full only after nine placements", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()
		marks := []Mark{markO, markX}

		for position := 1; position <= Cells; position++ {
			// Then: it is not full before the last placement
			assert.False(t, board.IsFull())

			require.NoError(t, board.Place(marks[position%2], position))
		}

		// Then: it is full after nine placements
		assert.True(t, board.IsFull())
	})

	t.Run("Full board without a line is a draw position", func(t *testing.T) {
		// Given: a full board with no uniform line
		board := boardFrom(t, [Cells]Mark{
			markO, markX, markO,
			markO, markX, markX,
			markX, markO, markO,
		})

		// Then: it is full and nobody won
		assert.True(t, board.IsFull())
		assert.False(t, board.CheckWin())
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with several marks
	board := boardFrom(t, [Cells]Mark{markX, markO, markX, markO, markX, "", "", "", ""})

	// When: the board is reset twice
	board.Reset()
	board.Reset()

	// Then: it equals a fresh board
	assert.Equal(t, *NewBoard(), *board)
	assert.Equal(t, 0, board.Occupied())
	assert.False(t, board.CheckWin())

	// Then: placements behave as on a fresh board
	for position := 1; position <= Cells; position++ {
		require.NoError(t, board.Place(markX, position))
	}
}

func TestPositionToIndex(t *testing.T) {
	index, err := PositionToIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	index, err = PositionToIndex(9)
	require.NoError(t, err)
	assert.Equal(t, 8, index)

	_, err = PositionToIndex(0)
	require.ErrorIs(t, err, apperror.ErrInvalidCell)
	assert.Contains(t, err.Error(), "cell 0")
}
