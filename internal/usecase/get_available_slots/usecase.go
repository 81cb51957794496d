package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/schedule"
	storage "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// UseCase usecase de consulta de horários disponíveis de um barbeiro
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	configRepo   ConfigRepository
	catalog      CatalogServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase cria o usecase de horários disponíveis
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	configRepo ConfigRepository,
	catalog CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		configRepo:   configRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute retorna os horários de início em que o serviço cabe por inteiro na
// agenda do barbeiro na data pedida
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("[GetAvailableSlots] Started: barberID=%d, serviceID=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validação da entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[GetAvailableSlots] Invalid request: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Barbeiro existe e está ativo?
	barber, err := uc.catalog.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrBarberNotFound) {
			uc.logger.Warn("[GetAvailableSlots] Barber %d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("[GetAvailableSlots] CatalogService error: %v", err)
		return nil, fmt.Errorf("%w: get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("[GetAvailableSlots] Barber %d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 3. Serviço existe e tem duração válida?
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			uc.logger.Warn("[GetAvailableSlots] Service %d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("[GetAvailableSlots] CatalogService error: %v", err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	if !service.Active || service.DurationMinutes <= 0 {
		uc.logger.Warn("[GetAvailableSlots] Service %d inactive or with invalid duration", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Configuração efetiva de horários (barbeiro -> barbearia -> defaults)
	config, err := uc.configRepo.GetEffectiveConfig(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			config = domain.DefaultScheduleConfig()
		} else {
			uc.logger.Error("[GetAvailableSlots] Failed to load schedule config: %v", err)
			return nil, fmt.Errorf("%w: get schedule config: %v", ErrInternal, err)
		}
	}

	// 5. Data dentro da janela de agendamento
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("[GetAvailableSlots] Date rejected: %v", err)
		return nil, err
	}

	response := &Response{
		Date:            req.Date,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []types.TimeString{},
	}

	// 6. Dia fechado não é erro, é lista vazia
	if !config.IsOpenOn(req.Date.Weekday()) {
		uc.logger.Info("[GetAvailableSlots] Shop closed on %s", req.Date.Weekday())
		return response, nil
	}

	// 7. Agendamentos ativos e bloqueios do dia
	bookings, err := uc.bookingRepo.GetByBarberWithFilter(ctx, domain.BarberBookingsFilter{
		BarberID:  req.BarberID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("[GetAvailableSlots] Failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("[GetAvailableSlots] Failed to get schedule blocks: %v", err)
		return nil, fmt.Errorf("%w: get blocks: %v", ErrInternal, err)
	}

	// 8. Motor de disponibilidade
	slots, err := schedule.AvailableStarts(config.ToWorkingHours(), service.DurationMinutes, occupiedIntervals(bookings, blocks))
	if err != nil {
		uc.logger.Error("[GetAvailableSlots] Availability engine error: %v", err)
		return nil, fmt.Errorf("%w: compute availability: %v", ErrInternal, err)
	}

	// 9. Para o dia corrente, corta horários que já passaram ou que ferem a
	// antecedência mínima
	if schedule.SameDay(req.Date, now) {
		slots = filterPastSlots(slots, now, config.MinBookingNoticeMinutes)
	}

	response.Slots = slots

	uc.logger.Info("[GetAvailableSlots] Completed: barberID=%d, date=%s, %d slots available",
		req.BarberID, req.Date.Format(domain.DateFormat), len(slots))

	return response, nil
}

// filterPastSlots remove horários anteriores a agora + antecedência mínima
func filterPastSlots(slots []types.TimeString, now time.Time, noticeMinutes int) []types.TimeString {
	minStart, err := types.NewTimeString(now).AddMinutes(noticeMinutes)
	if err != nil {
		// agora + antecedência cruzou a meia-noite: nada mais cabe hoje
		return []types.TimeString{}
	}

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(minStart) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}
