package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/lib/pq"
)

const checkViolation = "23514"

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedbacks (user_id, event_id, stars, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		feedback.UserID,
		feedback.EventID,
		feedback.Stars,
		feedback.Comment,
	).Scan(&feedback.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case fkViolation:
				return entity.ErrEventNotFound
			case checkViolation:
				return entity.ErrInvalidStars
			}
		}
		return fmt.Errorf("failed to create feedback: %v", err)
	}

	return nil
}

func (r *feedbackRepository) GetByEventID(ctx context.Context, eventID int64) ([]entity.Feedback, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), event_id, stars, COALESCE(comment, '')
		FROM feedbacks
		WHERE event_id = $1
		ORDER BY id
	`
	return r.queryFeedbacks(ctx, query, eventID)
}

func (r *feedbackRepository) GetAll(ctx context.Context) ([]entity.Feedback, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), event_id, stars, COALESCE(comment, '')
		FROM feedbacks
		ORDER BY id
	`
	return r.queryFeedbacks(ctx, query)
}

func (r *feedbackRepository) queryFeedbacks(ctx context.Context, query string, args ...interface{}) ([]entity.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedbacks: %v", err)
	}
	defer rows.Close()

	var feedbacks []entity.Feedback
	for rows.Next() {
		var feedback entity.Feedback
		err := rows.Scan(
			&feedback.ID,
			&feedback.UserID,
			&feedback.EventID,
			&feedback.Stars,
			&feedback.Comment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %v", err)
		}
		feedbacks = append(feedbacks, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedbacks: %v", err)
	}

	return feedbacks, nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrFeedbackNotFound
	}

	return nil
}
