package domain

import "github.com/agendabarber/AB-BookingService/pkg/types"

// Default configuration values
const (
	DefaultOpenTime                = types.TimeString("09:00")
	DefaultCloseTime               = types.TimeString("18:00")
	DefaultSlotStepMinutes         = 30
	DefaultAdvanceBookingDays      = 15
	DefaultMinBookingNoticeMinutes = 30
)

// Business validation constants
const (
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 120
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 horas
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 90
	MinBookingNoticeMinutes     = 0
	MaxBookingNoticeMinutes     = 10080 // 1 semana
	MaxNotesLength              = 500
	MaxCustomerNameLength       = 100
	MaxCancellationReasonLength = 500
	MaxBlockReasonLength        = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses status que liberam o horário do agendamento
// Usado na filtragem ao montar a lista de intervalos ocupados
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByStaff,
	StatusNoShow,
}

// ActiveStatuses status de agendamentos que ocupam horário
var ActiveStatuses = []BookingStatus{
	StatusScheduled,
	StatusCompleted,
}
