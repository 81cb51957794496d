package booking

import "errors"

var (
	// ErrBookingNotFound é retornado quando o agendamento não é encontrado
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken é retornado quando a constraint de unicidade
	// (barbeiro, data, horário) rejeita o insert - dois clientes viram o
	// mesmo horário livre e um chegou primeiro
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery é retornado em erro de construção do SQL
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery é retornado em erro de execução do SQL
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow é retornado em erro de leitura do resultado
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
