package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	configRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/service/config/models"
)

// Service serviço de gestão da configuração de horários de funcionamento
type Service struct {
	configRepo ConfigRepository
	catalog    CatalogServiceClient
	logger     Logger
}

// NewService cria o serviço de configuração
func NewService(
	configRepo ConfigRepository,
	catalog CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

// GetEffective resolve a configuração efetiva de um barbeiro:
// barbeiro -> barbearia -> defaults de domínio
func (s *Service) GetEffective(ctx context.Context, barberID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetEffective: fetching config for barber=%d", barberID)

	config, err := s.configRepo.GetEffectiveConfig(ctx, barberID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetEffective: no config rows, using domain defaults for barber=%d", barberID)
			return models.FromDomainConfig(domain.DefaultScheduleConfig()), nil
		}
		s.logger.Error("GetEffective: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// Upsert cria ou atualiza a configuração de horários.
// Somente staff da barbearia.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: upserting config for barber=%v by user=%d", req.BarberID, req.UserID)

	// 1. Permissão de staff
	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Upsert: access denied for user=%d", req.UserID)
		return nil, err
	}

	// 2. Se a configuração é de um barbeiro, ele precisa existir
	if req.BarberID != nil {
		if _, err := s.catalog.GetBarber(ctx, *req.BarberID); err != nil {
			if errors.Is(err, catalogservice.ErrBarberNotFound) {
				s.logger.Warn("Upsert: barber id=%d not found", *req.BarberID)
				return nil, ErrBarberNotFound
			}
			s.logger.Error("Upsert: failed to get barber id=%d: %v", *req.BarberID, err)
			return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
		}
	}

	// 3. Conversão e validação
	config, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Upsert: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateConfig(config); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	// 4. Atualiza a linha existente ou cria uma nova
	existing, err := s.configRepo.GetByBarber(ctx, req.BarberID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("Upsert: failed to check existing config: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing config: %v", ErrInternal, err)
	}

	var saved *domain.ScheduleConfig
	if existing != nil {
		saved, err = s.configRepo.Update(ctx, existing.ID, config)
	} else {
		saved, err = s.configRepo.Create(ctx, config)
	}
	if err != nil {
		s.logger.Error("Upsert: failed to save config: %v", err)
		return nil, fmt.Errorf("%w: failed to save config: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

// validateConfig aplica os limites de negócio e a consistência interna dos
// horários (abertura antes do fechamento, almoço dentro do expediente)
func validateConfig(config *domain.ScheduleConfig) error {
	if err := config.ToWorkingHours().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if config.SlotStepMinutes < domain.MinSlotStepMinutes || config.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}

	if config.AdvanceBookingDays < domain.MinAdvanceBookingDays || config.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if config.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || config.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	if !config.Monday && !config.Tuesday && !config.Wednesday && !config.Thursday &&
		!config.Friday && !config.Saturday && !config.Sunday {
		return fmt.Errorf("%w: at least one working day is required", ErrInvalidInput)
	}

	return nil
}

// checkStaffAccess verifica se o usuário está na lista de staff da barbearia
func (s *Service) checkStaffAccess(ctx context.Context, userID int64) error {
	shop, err := s.catalog.GetShop(ctx)
	if err != nil {
		s.logger.Error("checkStaffAccess: failed to get shop: %v", err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get shop: %v", ErrInternal, err)
	}

	for _, managerID := range shop.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	return ErrAccessDenied
}
