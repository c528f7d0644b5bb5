package timeslots

import "time"

type DatetimeResourceSlot[R comparable, P any] struct {
	DatetimeSlot[P]

	ResourceID R
}

// DatetimeResourceMap is a ResourceMap taking and returning time.Time values.
type DatetimeResourceMap[R comparable, P any] struct {
	resources *ResourceMap[R, int64, P]
	location  *time.Location
}

func NewDatetimeResourceMap[R comparable, P any](location *time.Location, resourceIDs ...R) *DatetimeResourceMap[R, P] {
	return &DatetimeResourceMap[R, P]{
		resources: NewResourceMap[R, int64, P](resourceIDs...),
		location:  locationOrUTC(location),
	}
}

func (rm *DatetimeResourceMap[R, P]) AddResource(resourceID R) {
	rm.resources.AddResource(resourceID)
}

func (rm *DatetimeResourceMap[R, P]) RemoveResource(resourceID R) error {
	return rm.resources.RemoveResource(resourceID)
}

func (rm *DatetimeResourceMap[R, P]) Resources() []R {
	return rm.resources.Resources()
}

func (rm *DatetimeResourceMap[R, P]) AddSlot(resourceID R, start, end time.Time, payload P) (bool, error) {
	return rm.resources.AddSlot(resourceID, ToInstant(start), ToInstant(end), payload)
}

func (rm *DatetimeResourceMap[R, P]) AddSlotWithShift(resourceID R, start, end time.Time, payload P) (time.Time, time.Time, error) {
	placed, errAdd := rm.resources.AddSlotWithShift(resourceID, ToInstant(start), ToInstant(end), payload)
	if errAdd != nil {
		return time.Time{},
			time.Time{},
			errAdd
	}

	return FromInstant(placed.TimeStart, rm.location),
		FromInstant(placed.TimeEnd, rm.location),
		nil
}

func (rm *DatetimeResourceMap[R, P]) SlotsAt(point time.Time) []DatetimeResourceSlot[R, P] {
	hits := rm.resources.SlotsAt(ToInstant(point))

	result := make([]DatetimeResourceSlot[R, P], len(hits))

	for ix, hit := range hits {
		result[ix] = DatetimeResourceSlot[R, P]{
			ResourceID:   hit.ResourceID,
			DatetimeSlot: toDatetimeSlot(hit.Slot, rm.location),
		}
	}

	return result
}
