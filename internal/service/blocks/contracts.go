package blocks

import (
	"context"
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
)

// BlockRepository interface do repositório de bloqueios de agenda
type BlockRepository interface {
	Create(ctx context.Context, blk *domain.ScheduleBlock) (*domain.ScheduleBlock, error)
	GetByID(ctx context.Context, id int64) (*domain.ScheduleBlock, error)
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.ScheduleBlock, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogServiceClient interface do cliente do CatalogService
type CatalogServiceClient interface {
	GetShop(ctx context.Context) (*catalogservice.Shop, error)
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
