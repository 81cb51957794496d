package types

import "errors"

var (
	// ErrInvalidTimeFormat é retornado quando a string não está no formato HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange é retornado quando uma operação aritmética sai do intervalo de um dia
	ErrTimeOutOfRange = errors.New("types: time out of day range")
)
