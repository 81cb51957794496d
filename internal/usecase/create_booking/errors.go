package create_booking

import "errors"

var (
	// ErrBarberNotFound é retornado quando o barbeiro não é encontrado
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrServiceNotFound é retornado quando o serviço não é encontrado
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate é retornado para data de agendamento no passado
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture é retornado quando a data excede advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrShopClosed é retornado quando a barbearia não atende na data escolhida
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrSlotNotAvailable é retornado quando o horário escolhido está ocupado
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot é retornado quando o horário não é uma posição válida da grade
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook é retornado quando o agendamento fere minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput é retornado para entrada inválida
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal é retornado em erros internos do usecase
	ErrInternal = errors.New("create_booking: internal error")
)
