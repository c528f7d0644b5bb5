package timeslots

import "iter"

// floor returns the slot with the greatest start <= point.
func (idx *SlotIndex[R, T, P]) floor(point T) (Slot[T, P], bool) {
	var (
		result Slot[T, P]
		found  bool
	)

	idx.slots.DescendLessOrEqual(
		pivot[T, P](point),
		func(slot Slot[T, P]) bool {
			result = slot
			found = true

			return false
		},
	)

	return result, found
}

// ceiling returns the slot with the smallest start >= point.
func (idx *SlotIndex[R, T, P]) ceiling(point T) (Slot[T, P], bool) {
	var (
		result Slot[T, P]
		found  bool
	)

	idx.slots.AscendGreaterOrEqual(
		pivot[T, P](point),
		func(slot Slot[T, P]) bool {
			result = slot
			found = true

			return false
		},
	)

	return result, found
}

// blocking returns the earliest stored slot intersecting [start, end).
// Only the floor and ceiling of start need checking as stored slots never overlap.
func (idx *SlotIndex[R, T, P]) blocking(start, end T) (Slot[T, P], bool) {
	if previous, exists := idx.floor(start); exists && previous.End > start {
		return previous, true
	}

	if next, exists := idx.ceiling(start); exists && next.Start < end {
		return next, true
	}

	return Slot[T, P]{}, false
}

// SlotAt returns the slot whose [Start, End) contains point.
func (idx *SlotIndex[R, T, P]) SlotAt(point T) (Slot[T, P], bool) {
	candidate, exists := idx.floor(point)
	if !exists || point >= candidate.End {
		return Slot[T, P]{}, false
	}

	return candidate, true
}

// Predecessor returns the slot with the greatest start strictly less than point.
func (idx *SlotIndex[R, T, P]) Predecessor(point T) (Slot[T, P], bool) {
	var (
		result Slot[T, P]
		found  bool
	)

	idx.slots.DescendLessOrEqual(
		pivot[T, P](point),
		func(slot Slot[T, P]) bool {
			if slot.Start == point {
				return true
			}

			result = slot
			found = true

			return false
		},
	)

	return result, found
}

// Successor returns the slot with the smallest start strictly greater than point.
func (idx *SlotIndex[R, T, P]) Successor(point T) (Slot[T, P], bool) {
	var (
		result Slot[T, P]
		found  bool
	)

	idx.slots.AscendGreaterOrEqual(
		pivot[T, P](point),
		func(slot Slot[T, P]) bool {
			if slot.Start == point {
				return true
			}

			result = slot
			found = true

			return false
		},
	)

	return result, found
}

// Range yields slots with start in [lo, hi) in ascending order.
// Every ranging walks the tree again from lo.
// Mutating the index while ranging is not supported.
func (idx *SlotIndex[R, T, P]) Range(lo, hi T) iter.Seq[Slot[T, P]] {
	return func(yield func(Slot[T, P]) bool) {
		if lo >= hi {
			return
		}

		idx.slots.AscendRange(
			pivot[T, P](lo),
			pivot[T, P](hi),
			yield,
		)
	}
}

// All returns every slot ascending by start.
func (idx *SlotIndex[R, T, P]) All() []Slot[T, P] {
	result := make([]Slot[T, P], 0, idx.slots.Len())

	idx.slots.Ascend(
		func(slot Slot[T, P]) bool {
			result = append(result, slot)

			return true
		},
	)

	return result
}
