package analyses

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError marks a malformed request, surfaced to the caller before
// any side effects are performed.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }
