package entity

import "time"

// View structs are what reads return: image references resolved to a
// displayable form, children nested under their parent.

type TrackView struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	CoverImage   string      `json:"cover_image"`
	OverlayImage string      `json:"overlay_image"`
	Events       []EventView `json:"events,omitempty"`
}

type EventView struct {
	ID              int64      `json:"id"`
	TrackID         *int64     `json:"event_track_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	LongDescription string     `json:"long_description"`
	Speakers        []string   `json:"speakers"`
	InitialDate     *time.Time `json:"initial_date"`
	FinalDate       *time.Time `json:"final_date"`
	Location        string     `json:"location"`
	Capacity        int        `json:"capacity"`
	AvailableSeats  int        `json:"available_seats"`
	CoverImage      string     `json:"cover_image"`
	CardImage       string     `json:"card_image"`
	TrackName       string     `json:"event_track_name"`
	Feedbacks       []Feedback `json:"feedbacks,omitempty"`
}
