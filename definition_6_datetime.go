package timeslots

import "time"

// ToInstant converts a wall-clock value to Unix seconds, the axis used by
// the datetime calendars. Sub-second precision is truncated.
func ToInstant(t time.Time) int64 {
	return t.Unix()
}

// FromInstant converts Unix seconds back to a wall-clock value in location,
// UTC when location is nil.
func FromInstant(instant int64, location *time.Location) time.Time {
	return time.Unix(instant, 0).In(locationOrUTC(location))
}

type DatetimeSlot[P any] struct {
	Payload P

	Start time.Time
	End   time.Time
}

// DatetimeSlotIndex is a SlotIndex taking and returning time.Time values.
type DatetimeSlotIndex[R comparable, P any] struct {
	index    *SlotIndex[R, int64, P]
	location *time.Location
}

// NewDatetimeSlotIndex renders results in location, UTC when nil.
func NewDatetimeSlotIndex[R comparable, P any](resourceID R, location *time.Location) *DatetimeSlotIndex[R, P] {
	return &DatetimeSlotIndex[R, P]{
		index:    NewSlotIndex[R, int64, P](resourceID),
		location: locationOrUTC(location),
	}
}

func locationOrUTC(location *time.Location) *time.Location {
	if location == nil {
		return time.UTC
	}

	return location
}

func toDatetimeSlot[P any](slot Slot[int64, P], location *time.Location) DatetimeSlot[P] {
	return DatetimeSlot[P]{
		Start:   FromInstant(slot.Start, location),
		End:     FromInstant(slot.End, location),
		Payload: slot.Payload,
	}
}

func (idx *DatetimeSlotIndex[R, P]) toDatetime(slot Slot[int64, P]) DatetimeSlot[P] {
	return toDatetimeSlot(slot, idx.location)
}

func (idx *DatetimeSlotIndex[R, P]) Location() *time.Location {
	return idx.location
}

func (idx *DatetimeSlotIndex[R, P]) Insert(start, end time.Time, payload P) (bool, error) {
	return idx.index.Insert(ToInstant(start), ToInstant(end), payload)
}

func (idx *DatetimeSlotIndex[R, P]) InsertWithShift(start, end time.Time, payload P) (time.Time, time.Time, error) {
	placed, errInsert := idx.index.InsertWithShift(ToInstant(start), ToInstant(end), payload)
	if errInsert != nil {
		return time.Time{},
			time.Time{},
			errInsert
	}

	return FromInstant(placed.TimeStart, idx.location),
		FromInstant(placed.TimeEnd, idx.location),
		nil
}

func (idx *DatetimeSlotIndex[R, P]) Remove(start time.Time) bool {
	return idx.index.Remove(ToInstant(start))
}

func (idx *DatetimeSlotIndex[R, P]) SlotAt(point time.Time) (DatetimeSlot[P], bool) {
	slot, found := idx.index.SlotAt(ToInstant(point))
	if !found {
		return DatetimeSlot[P]{}, false
	}

	return idx.toDatetime(slot), true
}

func (idx *DatetimeSlotIndex[R, P]) Predecessor(point time.Time) (DatetimeSlot[P], bool) {
	slot, found := idx.index.Predecessor(ToInstant(point))
	if !found {
		return DatetimeSlot[P]{}, false
	}

	return idx.toDatetime(slot), true
}

func (idx *DatetimeSlotIndex[R, P]) Successor(point time.Time) (DatetimeSlot[P], bool) {
	slot, found := idx.index.Successor(ToInstant(point))
	if !found {
		return DatetimeSlot[P]{}, false
	}

	return idx.toDatetime(slot), true
}

func (idx *DatetimeSlotIndex[R, P]) All() []DatetimeSlot[P] {
	slots := idx.index.All()

	result := make([]DatetimeSlot[P], len(slots))

	for ix, slot := range slots {
		result[ix] = idx.toDatetime(slot)
	}

	return result
}
