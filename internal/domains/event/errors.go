package event

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventAlreadyExists = errors.New("event already exists")
	ErrEventInUse         = errors.New("event has artist appearances")
	ErrAppearanceNotFound = errors.New("event appearance not found")
	ErrAppearanceExists   = errors.New("artist already appears at this event")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrAppearanceNotFound):
		return 404
	case errors.Is(err, ErrEventAlreadyExists), errors.Is(err, ErrEventInUse), errors.Is(err, ErrAppearanceExists):
		return 409
	default:
		return 500
	}
}
