package schedule

import (
	"fmt"

	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// WorkingHours is the operating-hours rule set consumed by the engine for a
// single day: opening and closing time, an optional lunch window during which
// no appointment may run, and the fixed spacing of the candidate grid.
type WorkingHours struct {
	Open        types.TimeString
	Close       types.TimeString
	LunchStart  *types.TimeString
	LunchEnd    *types.TimeString
	StepMinutes int
}

// Validate verifica os invariantes da configuração:
// Open < Close, StepMinutes > 0 e, se houver almoço,
// Open <= LunchStart < LunchEnd <= Close.
func (w WorkingHours) Validate() error {
	if err := w.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidConfig, err)
	}
	if err := w.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidConfig, err)
	}
	if !w.Open.IsBefore(w.Close) {
		return fmt.Errorf("%w: open time %s must be before close time %s", ErrInvalidConfig, w.Open, w.Close)
	}
	if w.StepMinutes <= 0 {
		return fmt.Errorf("%w: slot step must be positive, got %d", ErrInvalidConfig, w.StepMinutes)
	}

	// Janela de almoço: ou os dois limites, ou nenhum
	if (w.LunchStart == nil) != (w.LunchEnd == nil) {
		return fmt.Errorf("%w: lunch window requires both start and end", ErrInvalidConfig)
	}
	if w.LunchStart != nil {
		if err := w.LunchStart.Validate(); err != nil {
			return fmt.Errorf("%w: lunch start: %v", ErrInvalidConfig, err)
		}
		if err := w.LunchEnd.Validate(); err != nil {
			return fmt.Errorf("%w: lunch end: %v", ErrInvalidConfig, err)
		}
		if !w.LunchStart.IsBefore(*w.LunchEnd) {
			return fmt.Errorf("%w: lunch start %s must be before lunch end %s", ErrInvalidConfig, *w.LunchStart, *w.LunchEnd)
		}
		if w.Open.IsAfter(*w.LunchStart) || w.LunchEnd.IsAfter(w.Close) {
			return fmt.Errorf("%w: lunch window %s-%s outside working hours %s-%s",
				ErrInvalidConfig, *w.LunchStart, *w.LunchEnd, w.Open, w.Close)
		}
	}

	return nil
}

// HasLunchBreak retorna true se há janela de almoço configurada
func (w WorkingHours) HasLunchBreak() bool {
	return w.LunchStart != nil && w.LunchEnd != nil
}
