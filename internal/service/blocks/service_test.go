package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	blockRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/block"
	"github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	"github.com/agendabarber/AB-BookingService/internal/service/blocks/models"
	"github.com/agendabarber/AB-BookingService/pkg/ptr"
)

type fakeBlockRepo struct {
	byID    map[int64]*domain.ScheduleBlock
	created *domain.ScheduleBlock
	deleted []int64
}

func newFakeBlockRepo(blocks ...*domain.ScheduleBlock) *fakeBlockRepo {
	f := &fakeBlockRepo{byID: map[int64]*domain.ScheduleBlock{}}
	for _, b := range blocks {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBlockRepo) Create(_ context.Context, blk *domain.ScheduleBlock) (*domain.ScheduleBlock, error) {
	blk.ID = 21
	blk.CreatedAt = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	f.created = blk
	return blk, nil
}

func (f *fakeBlockRepo) GetByID(_ context.Context, id int64) (*domain.ScheduleBlock, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, blockRepo.ErrBlockNotFound
	}
	return b, nil
}

func (f *fakeBlockRepo) GetByBarberAndDate(_ context.Context, barberID int64, _ time.Time) ([]*domain.ScheduleBlock, error) {
	var out []*domain.ScheduleBlock
	for _, b := range f.byID {
		if b.BarberID == barberID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return blockRepo.ErrBlockNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
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

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	managerID  = int64(77)
	barberUser = int64(5)
	strangerID = int64(999)
)

func newService(repo *fakeBlockRepo) *Service {
	svc := NewService(repo, &fakeCatalog{
		shop:   &catalogservice.Shop{ID: 1, ManagerIDs: []int64{managerID}},
		barber: &catalogservice.Barber{ID: 1, UserID: barberUser, Active: true},
	}, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	return svc
}

func validCreate() *models.CreateBlockRequest {
	return &models.CreateBlockRequest{
		UserID:          barberUser,
		BarberID:        1,
		Date:            time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		DurationMinutes: 60,
		Reason:          ptr.Ptr("consulta médica"),
	}
}

func TestCreate_ByBarber(t *testing.T) {
	repo := newFakeBlockRepo()
	svc := newService(repo)

	resp, err := svc.Create(context.Background(), validCreate())

	require.NoError(t, err)
	assert.Equal(t, int64(21), resp.ID)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, "2025-03-12", resp.BlockDate)
	require.NotNil(t, repo.created)
	assert.Equal(t, barberUser, repo.created.CreatedBy)
}

func TestCreate_ByStaff(t *testing.T) {
	svc := newService(newFakeBlockRepo())
	req := validCreate()
	req.UserID = managerID

	_, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
}

func TestCreate_StrangerDenied(t *testing.T) {
	svc := newService(newFakeBlockRepo())
	req := validCreate()
	req.UserID = strangerID

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc := newService(newFakeBlockRepo())

	cases := []struct {
		name   string
		mutate func(*models.CreateBlockRequest)
	}{
		{"past date", func(r *models.CreateBlockRequest) { r.Date = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) }},
		{"malformed time", func(r *models.CreateBlockRequest) { r.StartTime = "14h" }},
		{"zero duration", func(r *models.CreateBlockRequest) { r.DurationMinutes = 0 }},
		{"crosses midnight", func(r *models.CreateBlockRequest) {
			r.StartTime = "23:30"
			r.DurationMinutes = 60
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(req)

			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete_ByBarber(t *testing.T) {
	repo := newFakeBlockRepo(&domain.ScheduleBlock{ID: 7, BarberID: 1})
	svc := newService(repo)

	err := svc.Delete(context.Background(), 7, barberUser)

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newService(newFakeBlockRepo())

	err := svc.Delete(context.Background(), 42, barberUser)

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestDelete_StrangerDenied(t *testing.T) {
	svc := newService(newFakeBlockRepo(&domain.ScheduleBlock{ID: 7, BarberID: 1}))

	err := svc.Delete(context.Background(), 7, strangerID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_ReturnsBarberBlocks(t *testing.T) {
	repo := newFakeBlockRepo(
		&domain.ScheduleBlock{ID: 7, BarberID: 1, StartTime: "14:00", DurationMinutes: 60},
		&domain.ScheduleBlock{ID: 8, BarberID: 2, StartTime: "10:00", DurationMinutes: 30},
	)
	svc := newService(repo)

	resp, err := svc.List(context.Background(), &models.ListBlocksRequest{
		UserID:   barberUser,
		BarberID: 1,
		Date:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, int64(7), resp.Blocks[0].ID)
}
