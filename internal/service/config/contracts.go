package config

import (
	"context"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
)

// ConfigRepository interface do repositório de configuração de horários
type ConfigRepository interface {
	Create(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	GetByBarber(ctx context.Context, barberID *int64) (*domain.ScheduleConfig, error)
	GetEffectiveConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error)
	Update(ctx context.Context, id int64, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
}

// CatalogServiceClient interface do cliente do CatalogService
type CatalogServiceClient interface {
	GetShop(ctx context.Context) (*catalogservice.Shop, error)
	GetBarber(ctx context.Context, barberID int64) (*catalogservice.Barber, error)
}

// Logger interface para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
