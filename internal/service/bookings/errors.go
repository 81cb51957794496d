package bookings

import "errors"

var (
	// ErrBookingNotFound é retornado quando o agendamento não é encontrado
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBarberNotFound é retornado quando o barbeiro não é encontrado
	ErrBarberNotFound = errors.New("barber not found")

	// ErrAccessDenied é retornado quando o usuário não tem permissão
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel é retornado quando o agendamento não pode mais ser cancelado
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus é retornado ao tentar definir um status inválido
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput é retornado para entrada inválida
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
