package herodeck

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
)

// InfrastructureError represents a failure of the rendering stack itself
// (SDL init, window, renderer, font). These errors are typically fatal.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "browse_background")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("herodeck: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("herodeck: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsInvalidIndex checks if an error is a rejected out-of-range hero index.
func IsInvalidIndex(err error) bool {
	return errors.Is(err, catalog.ErrInvalidIndex)
}
