package timeslots

import (
	"fmt"
	"strings"

	"github.com/google/btree"
)

const _BTreeDegree = 32

// SlotIndex holds the non-overlapping slots of one resource, ordered by start.
// It is not safe for concurrent mutation.
type SlotIndex[R comparable, T Instant, P any] struct {
	slots *btree.BTreeG[Slot[T, P]]

	resourceID R
}

func lessByStart[T Instant, P any](a, b Slot[T, P]) bool {
	return a.Start < b.Start
}

func NewSlotIndex[R comparable, T Instant, P any](resourceID R) *SlotIndex[R, T, P] {
	return &SlotIndex[R, T, P]{
		resourceID: resourceID,

		slots: btree.NewG(_BTreeDegree, lessByStart[T, P]),
	}
}

func (idx *SlotIndex[R, T, P]) ResourceID() R {
	return idx.resourceID
}

func (idx *SlotIndex[R, T, P]) Len() int {
	return idx.slots.Len()
}

// Insert adds [start, end) if it does not overlap a stored slot.
// A conflict is reported as false, not as an error.
func (idx *SlotIndex[R, T, P]) Insert(start, end T, payload P) (bool, error) {
	candidate, errCr := NewSlot(start, end, payload)
	if errCr != nil {
		return false,
			errCr
	}

	if _, blocked := idx.blocking(start, end); blocked {
		return false,
			nil
	}

	idx.slots.ReplaceOrInsert(candidate)

	return true,
		nil
}

// Remove deletes the slot whose start equals the passed key.
func (idx *SlotIndex[R, T, P]) Remove(start T) bool {
	_, removed := idx.slots.Delete(pivot[T, P](start))

	return removed
}

// Get returns the slot starting exactly at start.
func (idx *SlotIndex[R, T, P]) Get(start T) (Slot[T, P], bool) {
	return idx.slots.Get(pivot[T, P](start))
}

func (idx *SlotIndex[R, T, P]) String() string {
	if idx.slots.Len() == 0 {
		return fmt.Sprintf("Schedule %v: (empty)", idx.resourceID)
	}

	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf("Schedule %v:\n", idx.resourceID),
	)

	idx.slots.Ascend(
		func(slot Slot[T, P]) bool {
			sb.WriteString(
				fmt.Sprintf(
					"- [%v-%v) → %v\n",

					slot.Start,
					slot.End,
					slot.Payload,
				),
			)

			return true
		},
	)

	return sb.String()
}

// pivot builds a search key, only Start takes part in ordering.
func pivot[T Instant, P any](start T) Slot[T, P] {
	return Slot[T, P]{
		Start: start,
	}
}
