package models

import (
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// Request modelos

// UpsertConfigRequest requisição de criação ou atualização da configuração de
// horários (do barbeiro quando BarberID presente, da barbearia quando nil)
type UpsertConfigRequest struct {
	UserID   int64  `json:"userId"`
	BarberID *int64 `json:"barberId,omitempty"`

	OpenTime   string  `json:"openTime"`  // "09:00"
	CloseTime  string  `json:"closeTime"` // "18:00"
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`

	SlotStepMinutes int `json:"slotStepMinutes"`

	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`

	AdvanceBookingDays      int `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int `json:"minBookingNoticeMinutes"`
}

// ToDomain converte a requisição para o modelo de domínio
func (r *UpsertConfigRequest) ToDomain() (*domain.ScheduleConfig, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	config := &domain.ScheduleConfig{
		BarberID:                r.BarberID,
		OpenTime:                openTime,
		CloseTime:               closeTime,
		SlotStepMinutes:         r.SlotStepMinutes,
		Monday:                  r.Monday,
		Tuesday:                 r.Tuesday,
		Wednesday:               r.Wednesday,
		Thursday:                r.Thursday,
		Friday:                  r.Friday,
		Saturday:                r.Saturday,
		Sunday:                  r.Sunday,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}

	if r.LunchStart != nil {
		lunchStart, err := types.NewTimeStringFromString(*r.LunchStart)
		if err != nil {
			return nil, err
		}
		config.LunchStart = &lunchStart
	}

	if r.LunchEnd != nil {
		lunchEnd, err := types.NewTimeStringFromString(*r.LunchEnd)
		if err != nil {
			return nil, err
		}
		config.LunchEnd = &lunchEnd
	}

	return config, nil
}

// Response modelos

// ConfigResponse resposta com a configuração de horários
type ConfigResponse struct {
	ID       int64  `json:"id"`
	BarberID *int64 `json:"barberId,omitempty"`

	OpenTime   string  `json:"openTime"`
	CloseTime  string  `json:"closeTime"`
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`

	SlotStepMinutes int `json:"slotStepMinutes"`

	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`

	AdvanceBookingDays      int `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int `json:"minBookingNoticeMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainConfig converte o modelo de domínio para DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:                      c.ID,
		BarberID:                c.BarberID,
		OpenTime:                c.OpenTime.String(),
		CloseTime:               c.CloseTime.String(),
		SlotStepMinutes:         c.SlotStepMinutes,
		Monday:                  c.Monday,
		Tuesday:                 c.Tuesday,
		Wednesday:               c.Wednesday,
		Thursday:                c.Thursday,
		Friday:                  c.Friday,
		Saturday:                c.Saturday,
		Sunday:                  c.Sunday,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}

	if c.LunchStart != nil {
		lunchStart := c.LunchStart.String()
		resp.LunchStart = &lunchStart
	}

	if c.LunchEnd != nil {
		lunchEnd := c.LunchEnd.String()
		resp.LunchEnd = &lunchEnd
	}

	return resp
}
