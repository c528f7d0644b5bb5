package timeslots

import "fmt"

// findAvailableStart returns the smallest start >= preferredStart at which
// a slot of the passed duration intersects no stored slot.
//
// Every step moves the candidate to the end of the slot blocking it, so the
// search is O(log N) per step. A densely packed region costs one step per
// blocking slot, degrading towards O(N log N).
func (idx *SlotIndex[R, T, P]) findAvailableStart(preferredStart, duration T) (T, error) {
	candidate := preferredStart

	for {
		candidateEnd := candidate + duration
		if candidateEnd <= candidate {
			return candidate,
				fmt.Errorf(
					"%w: start %v, duration %v",

					ErrShiftOverflow,
					candidate,
					duration,
				)
		}

		blocker, blocked := idx.blocking(candidate, candidateEnd)
		if !blocked {
			return candidate,
				nil
		}

		candidate = blocker.End
	}
}

// InsertWithShift inserts a slot of duration end-start at the earliest
// free start at or after start and returns where it was placed.
func (idx *SlotIndex[R, T, P]) InsertWithShift(start, end T, payload P) (Interval[T], error) {
	if errRange := validateRange("InsertWithShift", start, end); errRange != nil {
		return Interval[T]{},
			errRange
	}

	duration := end - start

	actualStart, errFind := idx.findAvailableStart(start, duration)
	if errFind != nil {
		return Interval[T]{},
			errFind
	}

	idx.slots.ReplaceOrInsert(
		Slot[T, P]{
			Start:   actualStart,
			End:     actualStart + duration,
			Payload: payload,
		},
	)

	return Interval[T]{
			TimeStart: actualStart,
			TimeEnd:   actualStart + duration,
		},
		nil
}
