package invite

import "errors"

var (
	ErrInvalidCode      = errors.New("invite code is invalid")
	ErrSettingsNotFound = errors.New("invite settings not found")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrSettingsNotFound):
		return 404
	case errors.Is(err, ErrInvalidCode):
		return 400
	default:
		return 500
	}
}
