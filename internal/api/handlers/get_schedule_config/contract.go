package get_schedule_config

import (
	"context"

	"github.com/agendabarber/AB-BookingService/internal/service/config/models"
)

type ConfigService interface {
	GetEffective(ctx context.Context, barberID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
