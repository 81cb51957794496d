package get_day_schedule

import (
	"context"
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
)

// BookingRepository interface do repositório de agendamentos
type BookingRepository interface {
	GetByBarberWithFilter(ctx context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error)
}

// BlockRepository interface do repositório de bloqueios de agenda
type BlockRepository interface {
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.ScheduleBlock, error)
}

// ConfigRepository interface do repositório de configuração de horários
type ConfigRepository interface {
	GetEffectiveConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error)
}

// CatalogServiceClient interface do cliente do CatalogService
type CatalogServiceClient interface {
	GetBarber(ctx context.Context, barberID int64) (*catalogservice.Barber, error)
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
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
