package apperror

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidStep  = errors.New("invalid history step")
	ErrInvalidID    = errors.New("invalid game id")
)
