package artist

import "errors"

var (
	// Validation errors
	ErrInvalidName = errors.New("artist name is invalid")

	// Business rule errors
	ErrArtistNotFound  = errors.New("artist not found")
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("caller does not own this artist profile")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrArtistNotFound), errors.Is(err, ErrProductNotFound):
		return 404
	case errors.Is(err, ErrNotOwner):
		return 403
	case errors.Is(err, ErrInvalidName):
		return 400
	default:
		return 500
	}
}
