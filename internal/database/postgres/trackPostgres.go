package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ds124wfegd/event-catalog/internal/entity"
)

type trackRepository struct {
	db *sql.DB
}

func NewTrackRepository(db *sql.DB) TrackRepository {
	return &trackRepository{db: db}
}

func (r *trackRepository) Create(ctx context.Context, track *entity.EventTrack) error {
	query := `
		INSERT INTO event_tracks (name, description, cover_image, overlay_image)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.db.QueryRowContext(ctx, query,
		track.Name,
		track.Description,
		track.CoverImage,
		track.OverlayImage,
	).Scan(&track.ID)
}

func (r *trackRepository) GetByID(ctx context.Context, id int64) (*entity.EventTrack, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), cover_image, overlay_image
		FROM event_tracks
		WHERE id = $1
	`

	var track entity.EventTrack
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&track.ID,
		&track.Name,
		&track.Description,
		&track.CoverImage,
		&track.OverlayImage,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrTrackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event track: %v", err)
	}

	return &track, nil
}

func (r *trackRepository) GetAll(ctx context.Context) ([]*entity.EventTrack, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), cover_image, overlay_image
		FROM event_tracks
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query event tracks: %v", err)
	}
	defer rows.Close()

	var tracks []*entity.EventTrack
	for rows.Next() {
		var track entity.EventTrack
		err := rows.Scan(
			&track.ID,
			&track.Name,
			&track.Description,
			&track.CoverImage,
			&track.OverlayImage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event track: %v", err)
		}
		tracks = append(tracks, &track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event tracks: %v", err)
	}

	return tracks, nil
}

func (r *trackRepository) Update(ctx context.Context, id int64, patch *entity.TrackPatch) error {
	b := &updateBuilder{}
	addField(b, "name", patch.Name)
	addField(b, "description", patch.Description)
	addField(b, "cover_image", patch.CoverImage)
	addField(b, "overlay_image", patch.OverlayImage)

	if b.empty() {
		return entity.ErrNothingToUpdate
	}

	query, args := b.query("event_tracks", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update event track: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrTrackNotFound
	}

	return nil
}

// Delete removes the track and everything below it. Feedbacks and
// recommendation rows go first, then events, then the track itself, so
// foreign keys hold at every step and a failure rolls everything back.
func (r *trackRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	cascades := []string{
		`DELETE FROM recommended WHERE event_id IN (SELECT id FROM events WHERE event_track_id = $1)`,
		`DELETE FROM feedbacks WHERE event_id IN (SELECT id FROM events WHERE event_track_id = $1)`,
		`DELETE FROM events WHERE event_track_id = $1`,
	}

	for _, query := range cascades {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("failed to cascade track delete: %v", err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM event_tracks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event track: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrTrackNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *trackRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_tracks WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event track existence: %v", err)
	}
	return exists, nil
}
