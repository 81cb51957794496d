package get_booking_dates

import (
	"context"
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
)

// ConfigRepository interface do repositório de configuração de horários
type ConfigRepository interface {
	GetEffectiveConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error)
}

// CatalogServiceClient interface do cliente do CatalogService
type CatalogServiceClient interface {
	GetBarber(ctx context.Context, barberID int64) (*catalogservice.Barber, error)
}

// TimeProvider interface para obter o horário atual (injetável para testes)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider provedor de tempo real para produção
type RealTimeProvider struct{}

// Now retorna o horário atual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
