package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidInput  = errors.New("input is not a cell number")
	ErrInvalidMark   = errors.New("mark must not be empty")
	ErrInvalidName   = errors.New("player name must not be empty")
	ErrDuplicateMark = errors.New("players must have different marks")
)
