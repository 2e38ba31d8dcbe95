package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidInviteCode  = errors.New("invite code is invalid or exhausted")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrEmailAlreadyExists):
		return 409
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return 401
	case errors.Is(err, ErrAccountDisabled):
		return 403
	case errors.Is(err, ErrInvalidInviteCode), errors.Is(err, ErrWrongPassword):
		return 400
	default:
		return 500
	}
}
