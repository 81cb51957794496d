package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	storage "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeBlockRepo struct {
	blocks []*domain.ScheduleBlock
	err    error
}

func (f *fakeBlockRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.ScheduleBlock, error) {
	return f.blocks, f.err
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

func newFixtureUseCase(b *fakeBookingRepo, blk *fakeBlockRepo) (*UseCase, *fakeTimeProvider) {
	tp := &fakeTimeProvider{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	uc := NewUseCase(
		b,
		blk,
		&fakeConfigRepo{err: storage.ErrConfigNotFound},
		&fakeCatalog{
			barber:  &catalogservice.Barber{ID: 1, Name: "Carlos", Active: true},
			service: &catalogservice.Service{ID: 2, Name: "Corte masculino", DurationMinutes: 30, Active: true},
		},
		nopLogger{},
	)
	uc.timeProvider = tp
	return uc, tp
}

func TestExecute_GridCoversWholeDay(t *testing.T) {
	uc, _ := newFixtureUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: date})

	require.NoError(t, err)
	assert.True(t, resp.Open)
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, ts(t, "09:00"), resp.Slots[0].Start)
	assert.Equal(t, ts(t, "09:30"), resp.Slots[0].End)
	assert.Equal(t, ts(t, "17:30"), resp.Slots[17].Start)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Empty(t, slot.Ref)
	}
}

func TestExecute_OccupiedSlotCarriesRef(t *testing.T) {
	b := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 42, StartTime: ts(t, "10:00"), DurationMinutes: 30, Status: domain.StatusScheduled},
	}}
	blk := &fakeBlockRepo{blocks: []*domain.ScheduleBlock{
		{ID: 7, StartTime: ts(t, "14:00"), DurationMinutes: 60},
	}}
	uc, _ := newFixtureUseCase(b, blk)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: date})

	require.NoError(t, err)

	byStart := make(map[types.TimeString]Slot, len(resp.Slots))
	for _, slot := range resp.Slots {
		byStart[slot.Start] = slot
	}

	assert.False(t, byStart[ts(t, "10:00")].Available)
	assert.Equal(t, "booking:42", byStart[ts(t, "10:00")].Ref)

	assert.False(t, byStart[ts(t, "14:00")].Available)
	assert.Equal(t, "block:7", byStart[ts(t, "14:00")].Ref)
	assert.False(t, byStart[ts(t, "14:30")].Available)

	assert.True(t, byStart[ts(t, "09:30")].Available)
	assert.True(t, byStart[ts(t, "15:00")].Available)
}

func TestExecute_ClosedDayReturnsEmptyGrid(t *testing.T) {
	uc, _ := newFixtureUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	// Domingo: fechado nos defaults
	date := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: date})

	require.NoError(t, err)
	assert.False(t, resp.Open)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SameDayPastSlotsUnavailable(t *testing.T) {
	uc, tp := newFixtureUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})
	tp.now = time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: date})

	require.NoError(t, err)
	// A grade continua completa, só a disponibilidade muda
	require.Len(t, resp.Slots, 18)
	for _, slot := range resp.Slots {
		// antecedência mínima de 30 min: 11:30 é o primeiro início válido
		if slot.Start.IsBefore(ts(t, "11:30")) {
			assert.False(t, slot.Available, "slot %s should be unavailable", slot.Start)
		} else {
			assert.True(t, slot.Available, "slot %s should be available", slot.Start)
		}
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc, _ := newFixtureUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: date})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_UnknownBarberRejected(t *testing.T) {
	uc, _ := newFixtureUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})
	uc.catalog.(*fakeCatalog).barber = nil

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{BarberID: 99, ServiceID: 2, Date: date})

	assert.ErrorIs(t, err, ErrBarberNotFound)
}
