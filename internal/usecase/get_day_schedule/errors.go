package get_day_schedule

import "errors"

var (
	// ErrBarberNotFound é retornado quando o barbeiro não é encontrado
	ErrBarberNotFound = errors.New("barber not found")

	// ErrServiceNotFound é retornado quando o serviço não é encontrado
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidDate é retornado para data de agendamento no passado
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture é retornado quando a data excede o horizonte de agendamento
	ErrDateTooFarInFuture = errors.New("date is beyond the booking horizon")

	// ErrInvalidInput é retornado para entrada inválida
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do usecase
	ErrInternal = errors.New("usecase: internal error")
)
