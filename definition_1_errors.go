package timeslots

import (
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

var (
	ErrInvalidRange      = errors.New("invalid time range")
	ErrShiftOverflow     = errors.New("shifted slot exceeds time axis")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrCalendarNotFound  = errors.New("calendar not found")
	ErrDuplicateCalendar = errors.New("calendar already registered")
)

// validateRange returns nil for a non-empty half-open range.
// The returned error matches ErrInvalidRange and goerrors.ErrInvalidInput.
func validateRange[T Instant](caller string, start, end T) error {
	if start < end {
		return nil
	}

	return fmt.Errorf(
		"%w: %w",

		ErrInvalidRange,
		goerrors.ErrInvalidInput{
			Caller:     caller,
			InputName:  "TimeEnd",
			InputValue: end,
			Issue: fmt.Errorf(
				"time start %v greater or equal to time end %v",
				start,
				end,
			),
		},
	)
}

func errResourceNotFound[R comparable](caller string, resourceID R) error {
	return fmt.Errorf(
		"%s: %w: %v",

		caller,
		ErrResourceNotFound,
		resourceID,
	)
}

func errCalendarNotFound[K comparable](caller string, key K) error {
	return fmt.Errorf(
		"%s: %w: %v",

		caller,
		ErrCalendarNotFound,
		key,
	)
}
