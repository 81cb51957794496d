package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	bookingRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/booking"
	configRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/schedule"
)

// UseCase usecase de criação de agendamento.
// Usa transação serializável para evitar corrida entre dois clientes
// disputando o mesmo horário.
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	configRepo   ConfigRepository
	catalog      CatalogServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase cria o usecase de criação de agendamento
func NewUseCase(
	bookingRepository BookingRepository,
	blockRepo BlockRepository,
	configRepository ConfigRepository,
	catalog CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		blockRepo:    blockRepo,
		configRepo:   configRepository,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute cria um agendamento depois de validar janela de datas, antecedência
// mínima, alinhamento à grade e disponibilidade do horário
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, barber=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validação da entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Horário atual
	now := uc.timeProvider.Now()

	// 3. Barbeiro no catálogo
	barber, err := uc.catalog.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("CreateBooking: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 4. Serviço no catálogo
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active || service.DurationMinutes <= 0 {
		uc.logger.Warn("CreateBooking: service id=%d inactive or with invalid duration", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Booking

	// 5. Operações de banco em transação serializável
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Configuração efetiva (barbeiro -> barbearia -> defaults)
		config, err := uc.configRepo.GetEffectiveConfig(txCtx, req.BarberID)
		if err != nil {
			if !errors.Is(err, configRepo.ErrConfigNotFound) {
				uc.logger.Error("CreateBooking: failed to get schedule config: %v", err)
				return fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
			}
			config = domain.DefaultScheduleConfig()
			uc.logger.Info("CreateBooking: using default schedule config for barber=%d", req.BarberID)
		}

		// 5.2. Data dentro da janela de agendamento
		if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 5.3. A barbearia atende nesse dia da semana?
		if !config.IsOpenOn(req.Date.Weekday()) {
			uc.logger.Warn("CreateBooking: shop is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrShopClosed
		}

		// 5.4. Antecedência mínima para o dia corrente
		if err := validateBookingTime(req.Date, req.StartTime, now, config.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		workingHours := config.ToWorkingHours()

		// 5.5. Horário precisa ser uma posição válida da grade
		onGrid, err := schedule.OnGrid(workingHours, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check grid alignment: %v", err)
			return fmt.Errorf("%w: failed to check grid alignment: %v", ErrInternal, err)
		}
		if !onGrid {
			uc.logger.Warn("CreateBooking: start time %s is not a valid grid position", req.StartTime)
			return ErrInvalidTimeSlot
		}

		// 5.6. Agendamentos ativos do dia com lock (FOR UPDATE) + bloqueios
		bookings, err := uc.bookingRepo.GetByBarberWithFilter(txCtx, domain.BarberBookingsFilter{
			BarberID:  req.BarberID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.GetByBarberAndDate(txCtx, req.BarberID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule blocks: %v", err)
			return fmt.Errorf("%w: failed to get schedule blocks: %v", ErrInternal, err)
		}

		// 5.7. O serviço cabe por inteiro começando nesse horário?
		available, err := schedule.StartAvailable(workingHours, req.StartTime, service.DurationMinutes, occupiedIntervals(bookings, blocks))
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("CreateBooking: slot %s on %s is not available",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 5.8. Criação com denormalização dos dados do serviço e do cliente
		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			CustomerName:    req.CustomerName,
			ServiceName:     service.Name,
			ServicePrice:    servicePrice(service.Price),
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Corrida perdida: o índice único pegou o que a transação não pegou
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s on %s taken by concurrent booking",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	endTime, err := schedule.EndTime(result.StartTime, result.DurationMinutes)
	if err != nil {
		// não deveria acontecer: o horário foi validado contra o fechamento
		uc.logger.Error("CreateBooking: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		BarberID:        result.BarberID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CustomerName:    result.CustomerName,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
