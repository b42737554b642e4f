package entity

type Feedback struct {
	ID      int64  `json:"id" db:"id"`
	UserID  string `json:"user_id" db:"user_id"`
	EventID int64  `json:"event_id" db:"event_id"`
	Stars   int    `json:"stars" db:"stars"`
	Comment string `json:"comment" db:"comment"`
}

const (
	MinStars = 1
	MaxStars = 5
)
