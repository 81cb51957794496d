package create_block

import (
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/service/blocks/models"
)

// CreateBlockRequest modelo de requisição HTTP
type CreateBlockRequest struct {
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Reason          *string `json:"reason,omitempty"`
}

// ToServiceRequest converte a requisição HTTP para o modelo do serviço
func (r *CreateBlockRequest) ToServiceRequest(userID, barberID int64) (*models.CreateBlockRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockRequest{
		UserID:          userID,
		BarberID:        barberID,
		Date:            date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Reason:          r.Reason,
	}, nil
}
