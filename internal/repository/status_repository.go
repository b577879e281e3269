package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/change-adapter/internal/domain"
)

// StatusRepository stores status-transition audit entries.
type StatusRepository interface {
	Create(ctx context.Context, transition *domain.StatusTransition) error
	ListRecent(ctx context.Context, limit int) ([]domain.StatusTransition, error)
}

type statusRepository struct {
	pool *pgxpool.Pool
}

// NewStatusRepository builds repository.
func NewStatusRepository(pool *pgxpool.Pool) StatusRepository {
	return &statusRepository{pool: pool}
}

func (r *statusRepository) Create(ctx context.Context, transition *domain.StatusTransition) error {
	const query = `
        INSERT INTO status_transitions (adapter_id, status, event_id)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		transition.AdapterID,
		transition.Status,
		transition.EventID,
	).Scan(&transition.ID, &transition.CreatedAt)
}

func (r *statusRepository) ListRecent(ctx context.Context, limit int) ([]domain.StatusTransition, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
        SELECT id, adapter_id, status, event_id, created_at
        FROM status_transitions ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StatusTransition
	for rows.Next() {
		var transition domain.StatusTransition
		if err := rows.Scan(
			&transition.ID,
			&transition.AdapterID,
			&transition.Status,
			&transition.EventID,
			&transition.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, transition)
	}
	return result, rows.Err()
}
