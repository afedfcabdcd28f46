package diff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a violated precondition (h <= 0 or eps <= 0).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomain marks an unexpected non-finite arithmetic result.
	ErrDomain = errors.New("domain error")
)

// PointError reports which entry of a sweep produced a non-finite
// result. The whole call fails; no partial series is returned.
type PointError struct {
	Index int
	H     float64
}

func (e PointError) Error() string {
	return fmt.Sprintf("point %d (h=%g): non-finite result", e.Index, e.H)
}

func (e PointError) Unwrap() error { return ErrDomain }
