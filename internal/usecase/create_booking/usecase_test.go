package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	bookingRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/booking"
	configRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/pkg/ptr"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 101
	booking.CreatedAt = time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockRepo struct {
	blocks []*domain.ScheduleBlock
}

func (f *fakeBlockRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.ScheduleBlock, error) {
	return f.blocks, nil
}

type fakeConfigRepo struct {
	config *domain.ScheduleConfig
	err    error
}

func (f *fakeConfigRepo) GetEffectiveConfig(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

type fakeCatalog struct {
	barber  *catalogservice.Barber
	service *catalogservice.Service
}

func (f *fakeCatalog) GetBarber(_ context.Context, _ int64) (*catalogservice.Barber, error) {
	if f.barber == nil {
		return nil, catalogservice.ErrBarberNotFound
	}
	return f.barber, nil
}

func (f *fakeCatalog) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	if f.service == nil {
		return nil, catalogservice.ErrServiceNotFound
	}
	return f.service, nil
}

// fakeTxManager executa a função direto, sem transação de verdade
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

type fixture struct {
	bookings *fakeBookingRepo
	blocks   *fakeBlockRepo
	config   *fakeConfigRepo
	catalog  *fakeCatalog
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{},
		blocks:   &fakeBlockRepo{},
		config:   &fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		catalog: &fakeCatalog{
			barber: &catalogservice.Barber{ID: 1, Name: "Carlos", Active: true},
			service: &catalogservice.Service{
				ID: 2, Name: "Corte masculino", Price: ptr.Ptr(45.0), DurationMinutes: 30, Active: true,
			},
		},
	}
	f.uc = NewUseCase(f.bookings, f.blocks, f.config, f.catalog, fakeTxManager{}, nopLogger{})
	// Segunda-feira
	f.uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	return f
}

func validRequest(t *testing.T) *Request {
	return &Request{
		CustomerID:   10,
		CustomerName: "João Pereira",
		BarberID:     1,
		ServiceID:    2,
		Date:         time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:    ts(t, "10:00"),
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, ts(t, "10:00"), resp.StartTime)
	assert.Equal(t, ts(t, "10:30"), resp.EndTime)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)

	// Denormalização
	assert.Equal(t, "João Pereira", resp.CustomerName)
	assert.Equal(t, "Corte masculino", resp.ServiceName)
	assert.Equal(t, 45.0, resp.ServicePrice)

	require.NotNil(t, f.bookings.created)
	assert.Equal(t, domain.StatusScheduled, f.bookings.created.Status)
}

func TestExecute_SlotOccupiedByBooking(t *testing.T) {
	f := newFixture()
	f.bookings.bookings = []*domain.Booking{
		{ID: 50, StartTime: ts(t, "10:00"), DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SlotOccupiedByBlock(t *testing.T) {
	f := newFixture()
	f.blocks.blocks = []*domain.ScheduleBlock{
		{ID: 3, StartTime: ts(t, "09:30"), DurationMinutes: 60},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_TouchingBookingIsNotConflict(t *testing.T) {
	f := newFixture()
	// Termina exatamente às 10:00: intervalo meio-aberto, sem conflito
	f.bookings.bookings = []*domain.Booking{
		{ID: 50, StartTime: ts(t, "09:30"), DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.bookings.bookings = []*domain.Booking{
		{ID: 50, StartTime: ts(t, "10:00"), DurationMinutes: 30, Status: domain.StatusCancelledByCustomer},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.NoError(t, err)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	f := newFixture()
	req := validRequest(t)
	req.StartTime = ts(t, "10:15")

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ServiceMustEndByClose(t *testing.T) {
	f := newFixture()
	f.catalog.service.DurationMinutes = 60
	req := validRequest(t)
	// 17:30 + 60 min passaria das 18:00
	req.StartTime = ts(t, "17:30")

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ClosedDayRejected(t *testing.T) {
	f := newFixture()
	req := validRequest(t)
	// Domingo
	req.Date = time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture()
	req := validRequest(t)
	req.Date = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateBeyondHorizonRejected(t *testing.T) {
	f := newFixture()
	req := validRequest(t)
	req.Date = time.Date(2025, 3, 26, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_SameDayNoticeEnforced(t *testing.T) {
	f := newFixture()
	f.uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 3, 10, 9, 45, 0, 0, time.UTC)}
	req := validRequest(t)
	req.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	// 10:00 fere a antecedência mínima de 30 min às 09:45
	req.StartTime = ts(t, "10:00")

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ConcurrentInsertLosesGracefully(t *testing.T) {
	f := newFixture()
	f.bookings.createErr = bookingRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_UnknownBarber(t *testing.T) {
	f := newFixture()
	f.catalog.barber = nil

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	f := newFixture()
	f.catalog.service = nil

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing customer", func(r *Request) { r.CustomerID = 0 }},
		{"missing customer name", func(r *Request) { r.CustomerName = "" }},
		{"missing barber", func(r *Request) { r.BarberID = 0 }},
		{"missing service", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "9:00" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(t)
			tc.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_CustomConfigStep(t *testing.T) {
	f := newFixture()
	config := domain.DefaultScheduleConfig()
	config.SlotStepMinutes = 20
	f.config.config = config
	f.config.err = nil

	req := validRequest(t)
	// 09:40 está na grade com passo de 20 minutos
	req.StartTime = ts(t, "09:40")

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	// 09:30 não está
	req2 := validRequest(t)
	req2.StartTime = ts(t, "09:30")

	_, err = f.uc.Execute(context.Background(), req2)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}
