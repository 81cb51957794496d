package create_booking

import (
	"fmt"
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/schedule"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// validateRequest valida a entrada da requisição
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate verifica que a data cai na janela de agendamento
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	if schedule.DateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	if !schedule.DateWithinHorizon(bookingDate, now, advanceBookingDays) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateBookingTime verifica a antecedência mínima para agendamentos no dia
// corrente
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minBookingNoticeMinutes int,
) error {
	if !schedule.SameDay(bookingDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		// agora + antecedência cruzou a meia-noite: nenhum horário de hoje serve
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	return nil
}

// occupiedIntervals reduz agendamentos ativos e bloqueios a intervalos
// ocupados para o motor de disponibilidade
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

// servicePrice extrai o preço do serviço, 0.0 quando não informado
func servicePrice(price *float64) float64 {
	if price == nil {
		return 0.0
	}
	return *price
}
