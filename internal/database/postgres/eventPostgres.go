package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/lib/pq"
)

const fkViolation = "23503"

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `
	id, event_track_id, name, COALESCE(description, ''),
	COALESCE(long_description, ''), speakers, initial_date, final_date,
	COALESCE(location, ''), COALESCE(capacity, 0),
	COALESCE(available_seats, 0), cover_image, card_image,
	COALESCE(event_track_name, '')
`

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (
			event_track_id, name, description, long_description, speakers,
			initial_date, final_date, location, capacity, available_seats,
			cover_image, card_image, event_track_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		event.TrackID,
		event.Name,
		event.Description,
		event.LongDescription,
		pq.Array(event.Speakers),
		event.InitialDate,
		event.FinalDate,
		event.Location,
		event.Capacity,
		event.AvailableSeats,
		event.CoverImage,
		event.CardImage,
		event.TrackName,
	).Scan(&event.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == fkViolation {
			return entity.ErrUnknownTrack
		}
		return fmt.Errorf("failed to create event: %v", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*entity.Event, error) {
	var (
		event       entity.Event
		trackID     sql.NullInt64
		initialDate sql.NullTime
		finalDate   sql.NullTime
	)

	err := row.Scan(
		&event.ID,
		&trackID,
		&event.Name,
		&event.Description,
		&event.LongDescription,
		pq.Array(&event.Speakers),
		&initialDate,
		&finalDate,
		&event.Location,
		&event.Capacity,
		&event.AvailableSeats,
		&event.CoverImage,
		&event.CardImage,
		&event.TrackName,
	)
	if err != nil {
		return nil, err
	}

	if trackID.Valid {
		event.TrackID = &trackID.Int64
	}
	if initialDate.Valid {
		event.InitialDate = &initialDate.Time
	}
	if finalDate.Valid {
		event.FinalDate = &finalDate.Time
	}

	return &event, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %v", err)
	}

	return event, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) GetByTrackID(ctx context.Context, trackID int64) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_track_id = $1 ORDER BY id`
	return r.queryEvents(ctx, query, trackID)
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*entity.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %v", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %v", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %v", err)
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, id int64, patch *entity.EventPatch) error {
	b := &updateBuilder{}
	addField(b, "event_track_id", patch.TrackID)
	addField(b, "name", patch.Name)
	addField(b, "description", patch.Description)
	addField(b, "long_description", patch.LongDescription)
	if patch.Speakers.Set {
		if patch.Speakers.Valid {
			b.set("speakers", pq.Array(patch.Speakers.Value))
		} else {
			b.setNull("speakers")
		}
	}
	addField(b, "initial_date", patch.InitialDate)
	addField(b, "final_date", patch.FinalDate)
	addField(b, "location", patch.Location)
	addField(b, "capacity", patch.Capacity)
	addField(b, "cover_image", patch.CoverImage)
	addField(b, "card_image", patch.CardImage)
	addField(b, "event_track_name", patch.TrackName)

	if b.empty() {
		return entity.ErrNothingToUpdate
	}

	query, args := b.query("events", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == fkViolation {
			return entity.ErrUnknownTrack
		}
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrEventNotFound
	}

	return nil
}

// Delete removes the event with its feedbacks and recommendation entry
// as one transaction.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recommended WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete recommendation entry: %v", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM feedbacks WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event feedbacks: %v", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrEventNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *eventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event existence: %v", err)
	}
	return exists, nil
}

// DecrementSeats takes one seat, clamped at zero. A single conditional
// UPDATE, so concurrent callers never observe a lost update or a
// negative counter.
func (r *eventRepository) DecrementSeats(ctx context.Context, id int64) (int, error) {
	query := `
		UPDATE events
		SET available_seats = GREATEST(available_seats - 1, 0)
		WHERE id = $1
		RETURNING available_seats
	`

	var seats int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&seats)
	if err == sql.ErrNoRows {
		return 0, entity.ErrEventNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to decrement seats: %v", err)
	}

	return seats, nil
}

// IncrementSeats returns one seat, clamped at capacity.
func (r *eventRepository) IncrementSeats(ctx context.Context, id int64) (int, error) {
	query := `
		UPDATE events
		SET available_seats = LEAST(available_seats + 1, capacity)
		WHERE id = $1
		RETURNING available_seats
	`

	var seats int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&seats)
	if err == sql.ErrNoRows {
		return 0, entity.ErrEventNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment seats: %v", err)
	}

	return seats, nil
}
