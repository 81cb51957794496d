package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	bookingRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/booking"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/service/bookings/models"
	"github.com/agendabarber/AB-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID         map[int64]*domain.Booking
	cancelled    map[int64]domain.BookingStatus
	updated      map[int64]domain.BookingStatus
	cancelReason string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{
		byID:      map[int64]*domain.Booking{},
		cancelled: map[int64]domain.BookingStatus{},
		updated:   map[int64]domain.BookingStatus{},
	}
	for _, b := range bookings {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		if b.BarberID == filter.BarberID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updated[id] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled[id] = status
	f.cancelReason = reason
	return nil
}

type fakeCatalog struct {
	shop   *catalogservice.Shop
	barber *catalogservice.Barber
}

func (f *fakeCatalog) GetShop(_ context.Context) (*catalogservice.Shop, error) {
	return f.shop, nil
}

func (f *fakeCatalog) GetBarber(_ context.Context, _ int64) (*catalogservice.Barber, error) {
	if f.barber == nil {
		return nil, catalogservice.ErrBarberNotFound
	}
	return f.barber, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	customerID = int64(10)
	managerID  = int64(77)
	barberUser = int64(5)
	strangerID = int64(999)
)

func newService(repo *fakeBookingRepo) *Service {
	return NewService(repo, &fakeCatalog{
		shop:   &catalogservice.Shop{ID: 1, ManagerIDs: []int64{managerID}},
		barber: &catalogservice.Barber{ID: 1, UserID: barberUser, Active: true},
	}, nopLogger{})
}

func scheduledBooking() *domain.Booking {
	return &domain.Booking{
		ID:          1,
		CustomerID:  customerID,
		BarberID:    1,
		ServiceID:   2,
		BookingDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Status:      domain.StatusScheduled,
	}
}

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	svc := newService(newFakeBookingRepo(scheduledBooking()))

	resp, err := svc.GetByID(context.Background(), 1, customerID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "2025-03-11", resp.BookingDate)
}

func TestGetByID_StaffSeesAnyBooking(t *testing.T) {
	svc := newService(newFakeBookingRepo(scheduledBooking()))

	_, err := svc.GetByID(context.Background(), 1, managerID)

	assert.NoError(t, err)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc := newService(newFakeBookingRepo(scheduledBooking()))

	_, err := svc.GetByID(context.Background(), 1, strangerID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(newFakeBookingRepo())

	_, err := svc.GetByID(context.Background(), 42, customerID)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ByCustomer(t *testing.T) {
	repo := newFakeBookingRepo(scheduledBooking())
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             customerID,
		CancellationReason: "imprevisto",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByCustomer, repo.cancelled[1])
	assert.Equal(t, "imprevisto", repo.cancelReason)
}

func TestCancel_ByStaff(t *testing.T) {
	repo := newFakeBookingRepo(scheduledBooking())
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: managerID})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByStaff, repo.cancelled[1])
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := newFakeBookingRepo(scheduledBooking())
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: strangerID})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_FinishedBookingRejected(t *testing.T) {
	booking := scheduledBooking()
	booking.Status = domain.StatusCompleted
	svc := newService(newFakeBookingRepo(booking))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: customerID})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_StaffOnly(t *testing.T) {
	repo := newFakeBookingRepo(scheduledBooking())
	svc := newService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updated[1])

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: customerID,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newService(newFakeBookingRepo(scheduledBooking()))

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "banana",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetBarberBookings_BarberSeesOwnAgenda(t *testing.T) {
	svc := newService(newFakeBookingRepo(scheduledBooking()))

	resp, err := svc.GetBarberBookings(context.Background(), &models.GetBarberBookingsRequest{
		UserID:   barberUser,
		BarberID: 1,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetBarberBookings_StrangerDenied(t *testing.T) {
	svc := newService(newFakeBookingRepo(scheduledBooking()))

	_, err := svc.GetBarberBookings(context.Background(), &models.GetBarberBookingsRequest{
		UserID:   strangerID,
		BarberID: 1,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetCustomerBookings_StatusFilter(t *testing.T) {
	cancelled := scheduledBooking()
	cancelled.ID = 2
	cancelled.Status = domain.StatusCancelledByCustomer
	svc := newService(newFakeBookingRepo(scheduledBooking(), cancelled))

	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID:     customerID,
		CustomerID: customerID,
		Status:     ptr.Ptr("scheduled"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "scheduled", resp.Bookings[0].Status)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	svc := newService(newFakeBookingRepo())

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID:     customerID,
		CustomerID: customerID,
		Status:     ptr.Ptr("unknown"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerBookings_StaffSeesHistory(t *testing.T) {
	svc := newService(newFakeBookingRepo(scheduledBooking()))

	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID:     managerID,
		CustomerID: customerID,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetCustomerBookings_StrangerDenied(t *testing.T) {
	svc := newService(newFakeBookingRepo(scheduledBooking()))

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID:     strangerID,
		CustomerID: customerID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
