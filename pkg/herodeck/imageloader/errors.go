package imageloader

import (
	"errors"
	"fmt"
)

var (
	// ErrBadStatus is wrapped when the server answers with a non-200 status.
	ErrBadStatus = errors.New("unexpected http status")

	// ErrTooLarge is wrapped when a body exceeds the loader's size limit.
	ErrTooLarge = errors.New("image exceeds size limit")

	// ErrTooManyPixels is wrapped when decoded dimensions exceed the loader's
	// pixel limit.
	ErrTooManyPixels = errors.New("image exceeds pixel limit")
)

// LoadError describes a failed image load. It never escapes as a hard error;
// it rides in Result.Err so the view can draw a placeholder.
type LoadError struct {
	URL    string
	Status int // HTTP status, 0 when the request never completed
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("load %s: status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
