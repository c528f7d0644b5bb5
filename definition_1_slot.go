package timeslots

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Instant is any point on the internal time axis.
// It must be totally ordered and support subtraction.
type Instant interface {
	constraints.Integer | constraints.Float
}

type Interval[T Instant] struct {
	TimeStart T
	TimeEnd   T
}

func (interval Interval[T]) Duration() T {
	return interval.TimeEnd - interval.TimeStart
}

func (interval Interval[T]) Contains(point T) bool {
	return interval.TimeStart <= point && point < interval.TimeEnd
}

func (interval Interval[T]) Overlaps(other Interval[T]) bool {
	return interval.TimeStart < other.TimeEnd && other.TimeStart < interval.TimeEnd
}

func (interval Interval[T]) String() string {
	return fmt.Sprintf("[%v-%v)", interval.TimeStart, interval.TimeEnd)
}

// Slot is a half-open interval [Start, End) carrying caller data.
type Slot[T Instant, P any] struct {
	Payload P

	Start T
	End   T
}

func NewSlot[T Instant, P any](start, end T, payload P) (Slot[T, P], error) {
	if errRange := validateRange("NewSlot", start, end); errRange != nil {
		return Slot[T, P]{},
			errRange
	}

	return Slot[T, P]{
			Start:   start,
			End:     end,
			Payload: payload,
		},
		nil
}

func (s Slot[T, P]) Interval() Interval[T] {
	return Interval[T]{
		TimeStart: s.Start,
		TimeEnd:   s.End,
	}
}

func (s Slot[T, P]) Contains(point T) bool {
	return s.Start <= point && point < s.End
}

func (s Slot[T, P]) String() string {
	return fmt.Sprintf(
		"[%v-%v) %v",

		s.Start,
		s.End,
		s.Payload,
	)
}
