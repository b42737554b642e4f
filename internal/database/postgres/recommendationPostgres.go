package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/lib/pq"
)

type recommendationRepository struct {
	db *sql.DB
}

func NewRecommendationRepository(db *sql.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

// Add relies on the UNIQUE constraint on event_id: re-adding an already
// recommended event is swallowed by ON CONFLICT and changes nothing.
func (r *recommendationRepository) Add(ctx context.Context, eventID int64) error {
	query := `INSERT INTO recommended (event_id) VALUES ($1) ON CONFLICT (event_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, eventID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == fkViolation {
			return entity.ErrEventNotFound
		}
		return fmt.Errorf("failed to add recommendation: %v", err)
	}

	return nil
}

func (r *recommendationRepository) List(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT event_id FROM recommended ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %v", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %v", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recommendations: %v", err)
	}

	return ids, nil
}

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Wipe truncates the whole catalog. The schema itself stays, it is
// owned by the startup migrations.
func (r *adminRepository) Wipe(ctx context.Context) error {
	query := `TRUNCATE recommended, feedbacks, events, event_tracks RESTART IDENTITY`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to wipe catalog: %v", err)
	}
	return nil
}

func (r *adminRepository) ListImageRefs(ctx context.Context) ([]entity.ImageRef, error) {
	query := `
		SELECT cover_image FROM event_tracks WHERE cover_image IS NOT NULL
		UNION
		SELECT overlay_image FROM event_tracks WHERE overlay_image IS NOT NULL
		UNION
		SELECT cover_image FROM events WHERE cover_image IS NOT NULL
		UNION
		SELECT card_image FROM events WHERE card_image IS NOT NULL
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query image refs: %v", err)
	}
	defer rows.Close()

	var refs []entity.ImageRef
	for rows.Next() {
		var ref entity.ImageRef
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("failed to scan image ref: %v", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating image refs: %v", err)
	}

	return refs, nil
}
