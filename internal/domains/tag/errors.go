package tag

import "errors"

var (
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagAlreadyExists = errors.New("tag already exists")
	ErrTagInUse         = errors.New("tag is referenced by artists")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTagNotFound):
		return 404
	case errors.Is(err, ErrTagAlreadyExists), errors.Is(err, ErrTagInUse):
		return 409
	default:
		return 500
	}
}
