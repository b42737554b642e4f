package entity

import (
	"time"
)

type Event struct {
	ID              int64      `json:"id" db:"id"`
	TrackID         *int64     `json:"event_track_id" db:"event_track_id"`
	Name            string     `json:"name" db:"name"`
	Description     string     `json:"description" db:"description"`
	LongDescription string     `json:"long_description" db:"long_description"`
	Speakers        []string   `json:"speakers" db:"speakers"`
	InitialDate     *time.Time `json:"initial_date" db:"initial_date"`
	FinalDate       *time.Time `json:"final_date" db:"final_date"`
	Location        string     `json:"location" db:"location"`
	Capacity        int        `json:"capacity" db:"capacity"`
	AvailableSeats  int        `json:"available_seats" db:"available_seats"`
	CoverImage      ImageRef   `json:"-" db:"cover_image"`
	CardImage       ImageRef   `json:"-" db:"card_image"`
	// TrackName is a denormalized copy of the owning track's name. It is
	// written as supplied and not kept in sync with the track.
	TrackName string `json:"event_track_name" db:"event_track_name"`
}

// EventPatch carries the fields of a partial event update. Unset fields
// are left untouched; null fields clear the column. The seat counter is
// deliberately absent: it moves only through the seat ledger.
type EventPatch struct {
	TrackID         Field[int64]
	Name            Field[string]
	Description     Field[string]
	LongDescription Field[string]
	Speakers        Field[[]string]
	InitialDate     Field[time.Time]
	FinalDate       Field[time.Time]
	Location        Field[string]
	Capacity        Field[int]
	CoverImage      Field[ImageRef]
	CardImage       Field[ImageRef]
	TrackName       Field[string]
}

func (p *EventPatch) Empty() bool {
	return !p.TrackID.Set && !p.Name.Set && !p.Description.Set &&
		!p.LongDescription.Set && !p.Speakers.Set && !p.InitialDate.Set &&
		!p.FinalDate.Set && !p.Location.Set && !p.Capacity.Set &&
		!p.CoverImage.Set && !p.CardImage.Set && !p.TrackName.Set
}
