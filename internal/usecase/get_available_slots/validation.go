package get_available_slots

import (
	"fmt"
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/schedule"
)

// validateRequest valida a entrada da requisição
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate verifica que a data cai na janela de agendamento
// [hoje, hoje + advanceBookingDays], ambos os limites inclusivos
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	if schedule.DateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	if !schedule.DateWithinHorizon(requestDate, now, advanceBookingDays) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// occupiedIntervals reúne agendamentos ativos e bloqueios administrativos na
// forma única que o motor de disponibilidade consome - para ele os dois são
// apenas intervalos ocupados
func occupiedIntervals(bookings []*domain.Booking, blocks []*domain.ScheduleBlock) []schedule.OccupiedInterval {
	occupied := make([]schedule.OccupiedInterval, 0, len(bookings)+len(blocks))

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		occupied = append(occupied, schedule.OccupiedInterval{
			Start:           b.StartTime,
			DurationMinutes: b.DurationMinutes,
			Ref:             fmt.Sprintf("booking:%d", b.ID),
		})
	}

	for _, blk := range blocks {
		occupied = append(occupied, schedule.OccupiedInterval{
			Start:           blk.StartTime,
			DurationMinutes: blk.DurationMinutes,
			Ref:             fmt.Sprintf("block:%d", blk.ID),
		})
	}

	return occupied
}
