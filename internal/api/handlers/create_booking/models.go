package create_booking

import (
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	createBooking "github.com/agendabarber/AB-BookingService/internal/usecase/create_booking"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// CreateBookingRequest modelo de requisição HTTP
type CreateBookingRequest struct {
	CustomerName string  `json:"customerName"`
	BarberID     int64   `json:"barberId"`
	ServiceID    int64   `json:"serviceId"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse modelo de resposta HTTP
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	BarberID        int64   `json:"barberId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest converte a requisição HTTP para o modelo do usecase
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:   customerID,
		CustomerName: r.CustomerName,
		BarberID:     r.BarberID,
		ServiceID:    r.ServiceID,
		Date:         date,
		StartTime:    types.TimeString(r.StartTime),
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse converte a resposta do usecase para HTTP
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CustomerName:    resp.CustomerName,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
