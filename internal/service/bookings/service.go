package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	bookingRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/booking"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/service/bookings/models"
)

// Service serviço de consulta e gestão de agendamentos
type Service struct {
	bookingRepo BookingRepository
	catalog     CatalogServiceClient
	logger      Logger
}

// NewService cria o serviço de agendamentos
func NewService(
	bookingRepo BookingRepository,
	catalog CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// GetByID busca um agendamento pelo ID.
// O cliente só enxerga o próprio agendamento; staff da barbearia enxerga todos.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings busca o histórico de agendamentos de um cliente,
// opcionalmente filtrado por status. O histórico é privado: só o próprio
// cliente e o staff da barbearia enxergam.
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	if req.UserID != req.CustomerID {
		if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("GetCustomerBookings: access denied for user=%d to customer=%d history", req.UserID, req.CustomerID)
			return nil, ErrAccessDenied
		}
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBarberBookings busca a agenda de um barbeiro com filtros de período e
// status. Acessível ao próprio barbeiro e ao staff da barbearia.
func (s *Service) GetBarberBookings(ctx context.Context, req *models.GetBarberBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBarberBookings: fetching bookings for barber=%d, user=%d", req.BarberID, req.UserID)

	if err := s.checkBarberAccess(ctx, req.BarberID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBarberBookings: invalid filter for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBarberBookings: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberBookings: successfully fetched %d bookings for barber=%d", len(bookings), req.BarberID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancela um agendamento.
// O cliente cancela o próprio agendamento (cancelled_by_customer); o staff
// cancela qualquer um (cancelled_by_staff).
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	var cancelStatus domain.BookingStatus

	if booking.CustomerID == req.UserID {
		cancelStatus = domain.StatusCancelledByCustomer
	} else {
		if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByStaff
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus atualiza o status de um agendamento (completed, no_show).
// Somente staff da barbearia.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		return err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Helpers

// checkUserAccess verifica se o usuário pode ver o agendamento: é o dono ou
// faz parte do staff
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.CustomerID == userID {
		return nil
	}

	if err := s.checkStaffAccess(ctx, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
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

	if err := s.checkStaffAccess(ctx, userID); err != nil {
		s.logger.Warn("checkBarberAccess: user=%d has no access to barber=%d agenda", userID, barberID)
		return ErrAccessDenied
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

	s.logger.Warn("checkStaffAccess: user=%d is not staff", userID)
	return ErrAccessDenied
}
