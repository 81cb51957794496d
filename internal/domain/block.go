package domain

import (
	"time"

	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// ScheduleBlock represents an ad-hoc blocked range in a barber's agenda
// (day off, personal appointment, holiday). From the availability engine's
// point of view a block occupies time exactly like a booking does.
type ScheduleBlock struct {
	ID              int64
	BarberID        int64
	BlockDate       time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Reason          *string
	CreatedBy       int64
	CreatedAt       time.Time
}
