package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/change-adapter/internal/domain"
)

// RecordRepository mirrors normalized change records for local inspection.
// Records without a change_ticket_key cannot be keyed and are skipped.
type RecordRepository interface {
	Upsert(ctx context.Context, record domain.ChangeRecord) error
	UpsertAll(ctx context.Context, records []domain.ChangeRecord) (int, error)
	ListMirrored(ctx context.Context, limit int) ([]domain.ChangeRecord, error)
}

type recordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository builds repository.
func NewRecordRepository(pool *pgxpool.Pool) RecordRepository {
	return &recordRepository{pool: pool}
}

func (r *recordRepository) Upsert(ctx context.Context, record domain.ChangeRecord) error {
	if record.ChangeTicketKey == nil {
		return nil
	}
	const query = `
        INSERT INTO change_records (change_ticket_key, change_ticket_number, active, priority, description, work_start, work_end)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (change_ticket_key) DO UPDATE SET
            change_ticket_number = EXCLUDED.change_ticket_number,
            active = EXCLUDED.active,
            priority = EXCLUDED.priority,
            description = EXCLUDED.description,
            work_start = EXCLUDED.work_start,
            work_end = EXCLUDED.work_end,
            fetched_at = now()`
	_, err := r.pool.Exec(ctx, query,
		record.ChangeTicketKey,
		record.ChangeTicketNumber,
		record.Active,
		record.Priority,
		record.Description,
		record.WorkStart,
		record.WorkEnd,
	)
	return err
}

func (r *recordRepository) UpsertAll(ctx context.Context, records []domain.ChangeRecord) (int, error) {
	stored := 0
	for _, record := range records {
		if record.ChangeTicketKey == nil {
			continue
		}
		if err := r.Upsert(ctx, record); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

func (r *recordRepository) ListMirrored(ctx context.Context, limit int) ([]domain.ChangeRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
        SELECT change_ticket_key, change_ticket_number, active, priority, description, work_start, work_end
        FROM change_records ORDER BY fetched_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ChangeRecord
	for rows.Next() {
		var record domain.ChangeRecord
		if err := rows.Scan(
			&record.ChangeTicketKey,
			&record.ChangeTicketNumber,
			&record.Active,
			&record.Priority,
			&record.Description,
			&record.WorkStart,
			&record.WorkEnd,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
