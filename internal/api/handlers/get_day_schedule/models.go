package get_day_schedule

import (
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	getDaySchedule "github.com/agendabarber/AB-BookingService/internal/usecase/get_day_schedule"
)

// ScheduleSlot um intervalo da grade do dia
type ScheduleSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	Ref       string `json:"ref,omitempty"`
}

// DayScheduleResponse modelo de resposta HTTP
type DayScheduleResponse struct {
	Date            string         `json:"date"`
	BarberID        int64          `json:"barberId"`
	ServiceID       int64          `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	Open            bool           `json:"open"`
	Slots           []ScheduleSlot `json:"slots"`
}

// FromUseCaseResponse converte a resposta do usecase para HTTP
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]ScheduleSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = ScheduleSlot{
			Start:     slot.Start.String(),
			End:       slot.End.String(),
			Available: slot.Available,
			Ref:       slot.Ref,
		}
	}

	return &DayScheduleResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Open:            resp.Open,
		Slots:           slots,
	}
}

// ToUseCaseRequest monta a requisição do usecase a partir dos parâmetros
func ToUseCaseRequest(barberID, serviceID int64, dateStr string) (*getDaySchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySchedule.Request{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
