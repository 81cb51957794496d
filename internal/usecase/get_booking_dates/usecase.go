package get_booking_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	storage "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/schedule"
)

// UseCase usecase da janela de datas abertas para agendamento de um barbeiro
type UseCase struct {
	configRepo   ConfigRepository
	catalog      CatalogServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase cria o usecase de datas de agendamento
func NewUseCase(
	configRepo ConfigRepository,
	catalog CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:   configRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute enumera as datas de hoje até hoje + advance_booking_days, marcando
// em quais dias da semana a barbearia atende
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("[GetBookingDates] Started: barberID=%d", req.BarberID)

	// 1. Validação da entrada
	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	// 2. Barbeiro existe e está ativo?
	barber, err := uc.catalog.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrBarberNotFound) {
			uc.logger.Warn("[GetBookingDates] Barber %d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("[GetBookingDates] CatalogService error: %v", err)
		return nil, fmt.Errorf("%w: get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		return nil, ErrBarberNotFound
	}

	// 3. Configuração efetiva define o tamanho da janela
	config, err := uc.configRepo.GetEffectiveConfig(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			config = domain.DefaultScheduleConfig()
		} else {
			uc.logger.Error("[GetBookingDates] Failed to load schedule config: %v", err)
			return nil, fmt.Errorf("%w: get schedule config: %v", ErrInternal, err)
		}
	}

	// 4. Enumeração da janela: hoje inclusive até hoje + N inclusive
	horizon := schedule.HorizonDates(uc.timeProvider.Now(), config.AdvanceBookingDays)

	dates := make([]BookingDate, 0, len(horizon))
	for _, h := range horizon {
		dates = append(dates, BookingDate{
			Date:  h.Date,
			Label: h.Label,
			Open:  config.IsOpenOn(h.Date.Weekday()),
		})
	}

	uc.logger.Info("[GetBookingDates] Completed: barberID=%d, %d dates in window", req.BarberID, len(dates))

	return &Response{BarberID: req.BarberID, Dates: dates}, nil
}
