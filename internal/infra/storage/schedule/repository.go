package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/pkg/dbmetrics"
	"github.com/agendabarber/AB-BookingService/pkg/psqlbuilder"
)

var configColumns = []string{
	"id",
	"barber_id",
	"open_time",
	"close_time",
	"lunch_start",
	"lunch_end",
	"slot_step_minutes",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository repositório da configuração de horários de funcionamento
type Repository struct {
	db DBExecutor
}

// NewRepository cria um novo repositório de configuração de horários
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create insere uma nova configuração de horários
func (r *Repository) Create(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_config").
		Columns(
			"barber_id",
			"open_time",
			"close_time",
			"lunch_start",
			"lunch_end",
			"slot_step_minutes",
			"monday",
			"tuesday",
			"wednesday",
			"thursday",
			"friday",
			"saturday",
			"sunday",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			config.BarberID,
			config.OpenTime,
			config.CloseTime,
			config.LunchStart,
			config.LunchEnd,
			config.SlotStepMinutes,
			config.Monday,
			config.Tuesday,
			config.Wednesday,
			config.Thursday,
			config.Friday,
			config.Saturday,
			config.Sunday,
			config.AdvanceBookingDays,
			config.MinBookingNoticeMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetByBarber busca a configuração de um barbeiro específico
// (barberID nil = configuração da barbearia inteira)
func (r *Repository) GetByBarber(ctx context.Context, barberID *int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(configColumns...).
		From("schedule_config")

	if barberID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *barberID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - build select query: %v", ErrBuildQuery, err)
	}

	config, err := r.scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// GetEffectiveConfig resolve a configuração com hierarquia de prioridade:
// 1. Configuração específica do barbeiro (barber_id preenchido)
// 2. Configuração da barbearia inteira (barber_id NULL)
// Se nenhuma existir, retorna ErrConfigNotFound - o chamador decide usar
// os defaults de domínio.
func (r *Repository) GetEffectiveConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error) {
	config, err := r.GetByBarber(ctx, &barberID)
	if err == nil {
		return config, nil
	}
	if err != ErrConfigNotFound {
		return nil, fmt.Errorf("%w: GetEffectiveConfig - barber level: %v", ErrExecQuery, err)
	}

	config, err = r.GetByBarber(ctx, nil)
	if err == nil {
		return config, nil
	}
	if err != ErrConfigNotFound {
		return nil, fmt.Errorf("%w: GetEffectiveConfig - shop level: %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}

// Update atualiza uma configuração existente
func (r *Repository) Update(ctx context.Context, id int64, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_config").
		Set("open_time", config.OpenTime).
		Set("close_time", config.CloseTime).
		Set("lunch_start", config.LunchStart).
		Set("lunch_end", config.LunchEnd).
		Set("slot_step_minutes", config.SlotStepMinutes).
		Set("monday", config.Monday).
		Set("tuesday", config.Tuesday).
		Set("wednesday", config.Wednesday).
		Set("thursday", config.Thursday).
		Set("friday", config.Friday).
		Set("saturday", config.Saturday).
		Set("sunday", config.Sunday).
		Set("advance_booking_days", config.AdvanceBookingDays).
		Set("min_booking_notice_minutes", config.MinBookingNoticeMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	config.ID = id
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// rowScanner abstrai *sql.Row e *sql.Rows para o scan compartilhado
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanConfig(row rowScanner) (*domain.ScheduleConfig, error) {
	var config domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.BarberID,
		&config.OpenTime,
		&config.CloseTime,
		&config.LunchStart,
		&config.LunchEnd,
		&config.SlotStepMinutes,
		&config.Monday,
		&config.Tuesday,
		&config.Wednesday,
		&config.Thursday,
		&config.Friday,
		&config.Saturday,
		&config.Sunday,
		&config.AdvanceBookingDays,
		&config.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
