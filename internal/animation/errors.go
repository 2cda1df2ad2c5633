package animation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference is returned when an active pointer would be set to
	// something the owner does not contain.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrNotFound is returned when a frame or sequence is not a member.
	ErrNotFound = errors.New("not found")
	// ErrFormat is returned for malformed project data.
	ErrFormat = errors.New("malformed project data")
	// ErrMissingResource is returned when a project names a spritesheet that
	// cannot be found.
	ErrMissingResource = errors.New("missing resource")
)

func formatErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}

// Describe turns an error from this package into a short title and a message
// suitable for showing to a user.
func Describe(err error) (title, text string) {
	switch {
	case err == nil:
		return "", ""
	case errors.Is(err, ErrMissingResource):
		return "Spritesheet not found", err.Error()
	case errors.Is(err, ErrFormat):
		return "Invalid project file", err.Error()
	case errors.Is(err, ErrNotFound):
		return "Not found", err.Error()
	case errors.Is(err, ErrInvalidReference):
		return "Invalid selection", err.Error()
	default:
		return "Error", err.Error()
	}
}
