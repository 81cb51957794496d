package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	configRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/service/config/models"
	"github.com/agendabarber/AB-BookingService/pkg/ptr"
)

type fakeConfigRepo struct {
	byBarber  map[int64]*domain.ScheduleConfig
	shopWide  *domain.ScheduleConfig
	created   *domain.ScheduleConfig
	updatedID int64
}

func (f *fakeConfigRepo) Create(_ context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	config.ID = 11
	f.created = config
	return config, nil
}

func (f *fakeConfigRepo) GetByBarber(_ context.Context, barberID *int64) (*domain.ScheduleConfig, error) {
	if barberID == nil {
		if f.shopWide == nil {
			return nil, configRepo.ErrConfigNotFound
		}
		return f.shopWide, nil
	}
	c, ok := f.byBarber[*barberID]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return c, nil
}

func (f *fakeConfigRepo) GetEffectiveConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error) {
	if c, err := f.GetByBarber(ctx, &barberID); err == nil {
		return c, nil
	}
	return f.GetByBarber(ctx, nil)
}

func (f *fakeConfigRepo) Update(_ context.Context, id int64, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	config.ID = id
	f.updatedID = id
	return config, nil
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

const managerID = int64(77)

func newFixture() (*Service, *fakeConfigRepo) {
	repo := &fakeConfigRepo{byBarber: map[int64]*domain.ScheduleConfig{}}
	svc := NewService(repo, &fakeCatalog{
		shop:   &catalogservice.Shop{ID: 1, ManagerIDs: []int64{managerID}},
		barber: &catalogservice.Barber{ID: 1, UserID: 5, Active: true},
	}, nopLogger{})
	return svc, repo
}

func validUpsert() *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:                  managerID,
		OpenTime:                "08:00",
		CloseTime:               "19:00",
		SlotStepMinutes:         30,
		Monday:                  true,
		Tuesday:                 true,
		Wednesday:               true,
		Thursday:                true,
		Friday:                  true,
		Saturday:                true,
		AdvanceBookingDays:      20,
		MinBookingNoticeMinutes: 60,
	}
}

func TestGetEffective_FallsBackToDefaults(t *testing.T) {
	svc, _ := newFixture()

	resp, err := svc.GetEffective(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.OpenTime)
	assert.Equal(t, "18:00", resp.CloseTime)
	assert.Equal(t, 30, resp.SlotStepMinutes)
	assert.False(t, resp.Sunday)
}

func TestGetEffective_BarberRowWins(t *testing.T) {
	svc, repo := newFixture()
	custom := domain.DefaultScheduleConfig()
	custom.ID = 3
	custom.BarberID = ptr.Ptr(int64(1))
	custom.OpenTime = "10:00"
	repo.byBarber[1] = custom
	repo.shopWide = domain.DefaultScheduleConfig()

	resp, err := svc.GetEffective(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.OpenTime)
}

func TestUpsert_CreatesWhenMissing(t *testing.T) {
	svc, repo := newFixture()

	resp, err := svc.Upsert(context.Background(), validUpsert())

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, "08:00", repo.created.OpenTime.String())
}

func TestUpsert_UpdatesExisting(t *testing.T) {
	svc, repo := newFixture()
	existing := domain.DefaultScheduleConfig()
	existing.ID = 4
	repo.shopWide = existing

	_, err := svc.Upsert(context.Background(), validUpsert())

	require.NoError(t, err)
	assert.Equal(t, int64(4), repo.updatedID)
}

func TestUpsert_NonStaffDenied(t *testing.T) {
	svc, _ := newFixture()
	req := validUpsert()
	req.UserID = 999

	_, err := svc.Upsert(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpsert_ValidationErrors(t *testing.T) {
	svc, _ := newFixture()

	cases := []struct {
		name   string
		mutate func(*models.UpsertConfigRequest)
	}{
		{"open after close", func(r *models.UpsertConfigRequest) { r.OpenTime = "20:00" }},
		{"malformed time", func(r *models.UpsertConfigRequest) { r.OpenTime = "8h" }},
		{"step too small", func(r *models.UpsertConfigRequest) { r.SlotStepMinutes = 1 }},
		{"step too large", func(r *models.UpsertConfigRequest) { r.SlotStepMinutes = 240 }},
		{"horizon too large", func(r *models.UpsertConfigRequest) { r.AdvanceBookingDays = 365 }},
		{"lunch without end", func(r *models.UpsertConfigRequest) { r.LunchStart = ptr.Ptr("12:00") }},
		{"lunch outside hours", func(r *models.UpsertConfigRequest) {
			r.LunchStart = ptr.Ptr("07:00")
			r.LunchEnd = ptr.Ptr("07:30")
		}},
		{"no working days", func(r *models.UpsertConfigRequest) {
			r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday, r.Saturday, r.Sunday =
				false, false, false, false, false, false, false
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validUpsert()
			tc.mutate(req)

			_, err := svc.Upsert(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpsert_BarberMustExist(t *testing.T) {
	repo := &fakeConfigRepo{byBarber: map[int64]*domain.ScheduleConfig{}}
	svc := NewService(repo, &fakeCatalog{
		shop: &catalogservice.Shop{ID: 1, ManagerIDs: []int64{managerID}},
	}, nopLogger{})

	req := validUpsert()
	req.BarberID = ptr.Ptr(int64(99))

	_, err := svc.Upsert(context.Background(), req)

	assert.ErrorIs(t, err, ErrBarberNotFound)
}
