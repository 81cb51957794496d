package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	blockRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/block"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/schedule"
	"github.com/agendabarber/AB-BookingService/internal/service/blocks/models"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// Service serviço de bloqueios administrativos de agenda (folgas, intervalos,
// compromissos do barbeiro)
type Service struct {
	blockRepo    BlockRepository
	catalog      CatalogServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService cria o serviço de bloqueios
func NewService(
	blockRepo BlockRepository,
	catalog CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		blockRepo:    blockRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create cria um bloqueio de agenda.
// Acessível ao próprio barbeiro e ao staff da barbearia.
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("Create: creating block for barber=%d on %s by user=%d",
		req.BarberID, req.Date.Format(domain.DateFormat), req.UserID)

	// 1. Validação da entrada
	startTime, err := validateCreateRequest(req, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Permissão: o próprio barbeiro ou staff
	if err := s.checkBarberAccess(ctx, req.BarberID, req.UserID); err != nil {
		s.logger.Warn("Create: access denied for user=%d on barber=%d", req.UserID, req.BarberID)
		return nil, err
	}

	// 3. Criação
	block := &domain.ScheduleBlock{
		BarberID:        req.BarberID,
		BlockDate:       schedule.DateOnly(req.Date),
		StartTime:       startTime,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
		CreatedBy:       req.UserID,
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created block id=%d", created.ID)
	return models.FromDomainBlock(created), nil
}

// List busca os bloqueios de um barbeiro numa data.
// Acessível ao próprio barbeiro e ao staff.
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	s.logger.Info("List: fetching blocks for barber=%d on %s", req.BarberID, req.Date.Format(domain.DateFormat))

	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.checkBarberAccess(ctx, req.BarberID, req.UserID); err != nil {
		return nil, err
	}

	blocks, err := s.blockRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil {
		s.logger.Error("List: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d blocks for barber=%d", len(blocks), req.BarberID)
	return models.FromDomainBlockList(blocks), nil
}

// Delete remove um bloqueio de agenda.
// Acessível ao barbeiro dono da agenda e ao staff.
func (s *Service) Delete(ctx context.Context, blockID int64, userID int64) error {
	s.logger.Info("Delete: deleting block id=%d by user=%d", blockID, userID)

	block, err := s.blockRepo.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found", blockID)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBarberAccess(ctx, block.BarberID, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d on block id=%d", userID, blockID)
		return err
	}

	if err := s.blockRepo.Delete(ctx, blockID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted block id=%d", blockID)
	return nil
}

// validateCreateRequest valida a requisição de criação e devolve o horário de
// início já convertido
func validateCreateRequest(req *models.CreateBlockRequest, now time.Time) (types.TimeString, error) {
	if req.BarberID <= 0 {
		return "", fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if schedule.DateInPast(req.Date, now) {
		return "", fmt.Errorf("%w: date cannot be in the past", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes <= 0 {
		return "", fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	// O bloqueio não pode atravessar a meia-noite
	if _, err := startTime.AddMinutes(req.DurationMinutes); err != nil {
		return "", fmt.Errorf("%w: block cannot cross midnight", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockReasonLength {
		return "", fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}

	return startTime, nil
}

// checkBarberAccess verifica se o usuário é o próprio barbeiro ou staff
func (s *Service) checkBarberAccess(ctx context.Context, barberID int64, userID int64) error {
	barber, err := s.catalog.GetBarber(ctx, barberID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrBarberNotFound) {
			s.logger.Warn("checkBarberAccess: barber id=%d not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("checkBarberAccess: failed to get barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: checkBarberAccess - failed to get barber: %v", ErrInternal, err)
	}

	if barber.UserID == userID {
		return nil
	}

	shop, err := s.catalog.GetShop(ctx)
	if err != nil {
		s.logger.Error("checkBarberAccess: failed to get shop: %v", err)
		return fmt.Errorf("%w: checkBarberAccess - failed to get shop: %v", ErrInternal, err)
	}

	for _, managerID := range shop.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	return ErrAccessDenied
}
