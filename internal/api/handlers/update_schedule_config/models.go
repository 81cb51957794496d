package update_schedule_config

import "github.com/agendabarber/AB-BookingService/internal/service/config/models"

// UpsertConfigRequest modelo de requisição HTTP
type UpsertConfigRequest struct {
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
}

// ToServiceRequest converte a requisição HTTP para o modelo do serviço
func (r *UpsertConfigRequest) ToServiceRequest(userID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:                  userID,
		BarberID:                r.BarberID,
		OpenTime:                r.OpenTime,
		CloseTime:               r.CloseTime,
		LunchStart:              r.LunchStart,
		LunchEnd:                r.LunchEnd,
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
}
