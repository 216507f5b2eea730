package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrEmptyInput   = errors.New("empty input line")
	ErrInputClosed  = errors.New("input closed before the game ended")
)
