package domain

import (
	"time"

	"github.com/agendabarber/AB-BookingService/internal/schedule"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// ScheduleConfig represents the operating-hours rule set of the barbershop.
// Supports a two-level hierarchy:
// 1. Barber-specific configuration (barber_id set)
// 2. Shop-wide configuration (barber_id NULL)
type ScheduleConfig struct {
	ID       int64
	BarberID *int64 // NULL = config da barbearia inteira

	OpenTime   types.TimeString
	CloseTime  types.TimeString
	LunchStart *types.TimeString // Opcional; se presente, LunchEnd também
	LunchEnd   *types.TimeString

	SlotStepMinutes int

	// Dias de funcionamento
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool

	AdvanceBookingDays      int // Horizonte de agendamento em dias (inclusivo)
	MinBookingNoticeMinutes int // Antecedência mínima para agendar no mesmo dia

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsShopWide returns true if this is the shop-wide configuration
func (c *ScheduleConfig) IsShopWide() bool {
	return c.BarberID == nil
}

// HasLunchBreak returns true if a lunch window is configured
func (c *ScheduleConfig) HasLunchBreak() bool {
	return c.LunchStart != nil && c.LunchEnd != nil
}

// IsOpenOn returns true if the shop operates on the given weekday
func (c *ScheduleConfig) IsOpenOn(weekday time.Weekday) bool {
	switch weekday {
	case time.Monday:
		return c.Monday
	case time.Tuesday:
		return c.Tuesday
	case time.Wednesday:
		return c.Wednesday
	case time.Thursday:
		return c.Thursday
	case time.Friday:
		return c.Friday
	case time.Saturday:
		return c.Saturday
	case time.Sunday:
		return c.Sunday
	default:
		return false
	}
}

// ToWorkingHours converte a configuração para o formato consumido pelo motor
// de disponibilidade
func (c *ScheduleConfig) ToWorkingHours() schedule.WorkingHours {
	return schedule.WorkingHours{
		Open:        c.OpenTime,
		Close:       c.CloseTime,
		LunchStart:  c.LunchStart,
		LunchEnd:    c.LunchEnd,
		StepMinutes: c.SlotStepMinutes,
	}
}

// DefaultScheduleConfig configuração usada quando nenhuma linha existe no banco
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		OpenTime:                DefaultOpenTime,
		CloseTime:               DefaultCloseTime,
		SlotStepMinutes:         DefaultSlotStepMinutes,
		Monday:                  true,
		Tuesday:                 true,
		Wednesday:               true,
		Thursday:                true,
		Friday:                  true,
		Saturday:                true,
		Sunday:                  false,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}
