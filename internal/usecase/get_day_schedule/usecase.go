package get_day_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	storage "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/schedule"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// UseCase usecase da grade completa do dia de um barbeiro, com cada início
// marcado como livre ou ocupado
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	configRepo   ConfigRepository
	catalog      CatalogServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase cria o usecase da grade do dia
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

// Execute monta a grade do dia: todos os inícios possíveis, cada um marcado
// como disponível ou não, com a referência do ocupante quando houver
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("[GetDaySchedule] Started: barberID=%d, serviceID=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validação da entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[GetDaySchedule] Invalid request: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Barbeiro e serviço no catálogo
	barber, err := uc.catalog.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrBarberNotFound) {
			uc.logger.Warn("[GetDaySchedule] Barber %d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("[GetDaySchedule] CatalogService error: %v", err)
		return nil, fmt.Errorf("%w: get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		return nil, ErrBarberNotFound
	}

	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			uc.logger.Warn("[GetDaySchedule] Service %d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("[GetDaySchedule] CatalogService error: %v", err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	if !service.Active || service.DurationMinutes <= 0 {
		return nil, ErrServiceNotFound
	}

	// 3. Configuração efetiva e janela de agendamento
	config, err := uc.configRepo.GetEffectiveConfig(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			config = domain.DefaultScheduleConfig()
		} else {
			uc.logger.Error("[GetDaySchedule] Failed to load schedule config: %v", err)
			return nil, fmt.Errorf("%w: get schedule config: %v", ErrInternal, err)
		}
	}

	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("[GetDaySchedule] Date rejected: %v", err)
		return nil, err
	}

	response := &Response{
		Date:            req.Date,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Open:            config.IsOpenOn(req.Date.Weekday()),
		Slots:           []Slot{},
	}

	// 4. Dia fechado: grade vazia, sem erro
	if !response.Open {
		uc.logger.Info("[GetDaySchedule] Shop closed on %s", req.Date.Weekday())
		return response, nil
	}

	// 5. Ocupações do dia
	bookings, err := uc.bookingRepo.GetByBarberWithFilter(ctx, domain.BarberBookingsFilter{
		BarberID:  req.BarberID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("[GetDaySchedule] Failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("[GetDaySchedule] Failed to get schedule blocks: %v", err)
		return nil, fmt.Errorf("%w: get blocks: %v", ErrInternal, err)
	}

	// 6. Grade etiquetada do motor de disponibilidade
	tagged, err := schedule.DaySlots(config.ToWorkingHours(), service.DurationMinutes, occupiedIntervals(bookings, blocks))
	if err != nil {
		uc.logger.Error("[GetDaySchedule] Availability engine error: %v", err)
		return nil, fmt.Errorf("%w: compute day schedule: %v", ErrInternal, err)
	}

	response.Slots = uc.buildSlots(tagged, service.DurationMinutes, req, now, config.MinBookingNoticeMinutes)

	uc.logger.Info("[GetDaySchedule] Completed: barberID=%d, date=%s, %d grid positions",
		req.BarberID, req.Date.Format(domain.DateFormat), len(response.Slots))

	return response, nil
}

// buildSlots converte a grade do motor para o modelo de resposta e, no dia
// corrente, rebaixa para indisponível os inícios que já passaram ou que ferem
// a antecedência mínima
func (uc *UseCase) buildSlots(tagged []schedule.TaggedSlot, durationMinutes int, req *Request, now time.Time, noticeMinutes int) []Slot {
	var minStart types.TimeString
	var minStartSet bool
	if schedule.SameDay(req.Date, now) {
		v, err := types.NewTimeString(now).AddMinutes(noticeMinutes)
		if err == nil {
			minStart = v
			minStartSet = true
		} else {
			// agora + antecedência cruzou a meia-noite: nada mais cabe hoje
			minStart = types.TimeString("23:59")
			minStartSet = true
		}
	}

	slots := make([]Slot, 0, len(tagged))
	for _, ts := range tagged {
		slot := Slot{
			Start:     ts.Start,
			Available: ts.Available,
			Ref:       ts.Ref,
		}

		if end, err := ts.Start.AddMinutes(durationMinutes); err == nil {
			slot.End = end
		}

		if minStartSet && ts.Start.IsBefore(minStart) {
			slot.Available = false
		}

		slots = append(slots, slot)
	}

	return slots
}
