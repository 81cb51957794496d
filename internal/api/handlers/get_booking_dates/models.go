package get_booking_dates

import (
	"github.com/agendabarber/AB-BookingService/internal/domain"
	getBookingDates "github.com/agendabarber/AB-BookingService/internal/usecase/get_booking_dates"
)

// BookingDate uma data da janela de agendamento
type BookingDate struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Open  bool   `json:"open"`
}

// BookingDatesResponse modelo de resposta HTTP
type BookingDatesResponse struct {
	BarberID int64         `json:"barberId"`
	Dates    []BookingDate `json:"dates"`
}

// FromUseCaseResponse converte a resposta do usecase para HTTP
func FromUseCaseResponse(resp *getBookingDates.Response) *BookingDatesResponse {
	dates := make([]BookingDate, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = BookingDate{
			Date:  d.Date.Format(domain.DateFormat),
			Label: d.Label,
			Open:  d.Open,
		}
	}

	return &BookingDatesResponse{
		BarberID: resp.BarberID,
		Dates:    dates,
	}
}
