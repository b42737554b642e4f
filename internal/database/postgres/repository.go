package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/ds124wfegd/event-catalog/internal/entity"
)

type TrackRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, track *entity.EventTrack) error
	GetByID(ctx context.Context, id int64) (*entity.EventTrack, error)
	GetAll(ctx context.Context) ([]*entity.EventTrack, error)
	Update(ctx context.Context, id int64, patch *entity.TrackPatch) error

	// Delete removes the track together with its events and their
	// feedbacks and recommendation entries, as one transaction.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	GetAll(ctx context.Context) ([]*entity.Event, error)
	GetByTrackID(ctx context.Context, trackID int64) ([]*entity.Event, error)
	Update(ctx context.Context, id int64, patch *entity.EventPatch) error

	// Delete removes the event together with its feedbacks and
	// recommendation entry, as one transaction.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)

	// Seat ledger: single-statement conditional updates, safe under
	// concurrent adjustments to the same event.
	DecrementSeats(ctx context.Context, id int64) (int, error)
	IncrementSeats(ctx context.Context, id int64) (int, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	GetByEventID(ctx context.Context, eventID int64) ([]entity.Feedback, error)
	GetAll(ctx context.Context) ([]entity.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

type RecommendationRepository interface {
	// Add inserts the event into the recommended set; adding an already
	// present event is a no-op.
	Add(ctx context.Context, eventID int64) error
	List(ctx context.Context) ([]int64, error)
}

type AdminRepository interface {
	// Wipe clears all catalog tables. Irreversible, reset environments only.
	Wipe(ctx context.Context) error

	// ListImageRefs returns every stored image reference across all
	// tables, for the uploads cleanup worker.
	ListImageRefs(ctx context.Context) ([]entity.ImageRef, error)
}

// updateBuilder collects SET clauses for a dynamic partial UPDATE.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) setNull(column string) {
	b.sets = append(b.sets, column+" = NULL")
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

// query finalizes the statement; id becomes the last placeholder.
func (b *updateBuilder) query(table string, id int64) (string, []interface{}) {
	b.args = append(b.args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(b.sets, ", "), len(b.args))
	return q, b.args
}

// addField applies an optional patch field: unset fields add nothing,
// null fields clear the column, set fields bind the value.
func addField[T any](b *updateBuilder, column string, f entity.Field[T]) {
	if !f.Set {
		return
	}
	if !f.Valid {
		b.setNull(column)
		return
	}
	b.set(column, f.Value)
}
