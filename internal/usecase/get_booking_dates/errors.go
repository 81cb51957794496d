package get_booking_dates

import "errors"

var (
	// ErrBarberNotFound é retornado quando o barbeiro não é encontrado
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidInput é retornado para entrada inválida
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do usecase
	ErrInternal = errors.New("usecase: internal error")
)
