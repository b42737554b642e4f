package entity

import "errors"

var (
	// Not-found errors
	ErrTrackNotFound    = errors.New("event track not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrFeedbackNotFound = errors.New("feedback not found")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrNameRequired     = errors.New("name is required")
	ErrUnknownTrack     = errors.New("event track does not exist")
	ErrInvalidStars     = errors.New("stars must be between 1 and 5")
	ErrInvalidDateRange = errors.New("final date cannot precede initial date")
	ErrNothingToUpdate  = errors.New("no fields to update")

	// General errors
	ErrAlreadyRecommended = errors.New("event is already recommended")
	ErrDatabaseError      = errors.New("database error")
)

// IsValidation reports whether err belongs to the validation family,
// surfaced to clients as a bad request rather than a server failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrUnknownTrack) ||
		errors.Is(err, ErrInvalidStars) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrNothingToUpdate)
}

// IsNotFound reports whether err means a referenced id does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTrackNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrFeedbackNotFound)
}
