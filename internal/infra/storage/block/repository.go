package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/pkg/dbmetrics"
	"github.com/agendabarber/AB-BookingService/pkg/psqlbuilder"
)

var blockColumns = []string{
	"id",
	"barber_id",
	"block_date",
	"start_time",
	"duration_minutes",
	"reason",
	"created_by",
	"created_at",
}

// Repository repositório de bloqueios administrativos de agenda
type Repository struct {
	db DBExecutor
}

// NewRepository cria um novo repositório de bloqueios
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create insere um novo bloqueio de agenda
func (r *Repository) Create(ctx context.Context, blk *domain.ScheduleBlock) (*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_blocks").
		Columns(
			"barber_id",
			"block_date",
			"start_time",
			"duration_minutes",
			"reason",
			"created_by",
		).
		Values(
			blk.BarberID,
			blk.BlockDate,
			blk.StartTime,
			blk.DurationMinutes,
			blk.Reason,
			blk.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blk.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blk.CreatedAt = createdAt.Time

	return blk, nil
}

// GetByID busca um bloqueio pelo ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("schedule_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var blk domain.ScheduleBlock
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&blk.ID,
		&blk.BarberID,
		&blk.BlockDate,
		&blk.StartTime,
		&blk.DurationMinutes,
		&blk.Reason,
		&blk.CreatedBy,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	blk.CreatedAt = createdAt.Time

	return &blk, nil
}

// GetByBarberAndDate busca os bloqueios de um barbeiro em uma data
func (r *Repository) GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("schedule_blocks").
		Where(squirrel.Eq{"barber_id": barberID, "block_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.ScheduleBlock, 0)

	for rows.Next() {
		var blk domain.ScheduleBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&blk.ID,
			&blk.BarberID,
			&blk.BlockDate,
			&blk.StartTime,
			&blk.DurationMinutes,
			&blk.Reason,
			&blk.CreatedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBarberAndDate - scan block: %v", ErrScanRow, err)
		}

		blk.CreatedAt = createdAt.Time
		blocks = append(blocks, &blk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete remove um bloqueio de agenda
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
