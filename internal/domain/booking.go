package domain

import (
	"time"

	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// BookingStatus represents the status of an appointment
type BookingStatus string

const (
	StatusScheduled           BookingStatus = "scheduled"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByStaff    BookingStatus = "cancelled_by_staff"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a barbershop appointment
type Booking struct {
	ID              int64
	CustomerID      int64
	BarberID        int64
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	CustomerName string
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledByStaff &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByStaff
}

// IsFinished returns true if the booking reached a terminal state
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow
}

// BarberBookingsFilter filtro para consultar agendamentos de um barbeiro
type BarberBookingsFilter struct {
	BarberID        int64          // Obrigatório
	StartDate       *time.Time     // Início do período (opcional, nil = sem limite)
	EndDate         *time.Time     // Fim do período (opcional, nil = sem limite)
	Status          *BookingStatus // Filtro por status (opcional)
	IncludeInactive bool           // Incluir agendamentos cancelados e no-show
}
