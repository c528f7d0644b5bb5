package timeslots

import "slices"

// ResourceSlot is a slot hit reported by a resource fan-out.
type ResourceSlot[R comparable, T Instant, P any] struct {
	Slot[T, P]

	ResourceID R
}

// ResourceMap owns one SlotIndex per resource.
// Fan-out queries report resources in registration order.
type ResourceMap[R comparable, T Instant, P any] struct {
	indexes map[R]*SlotIndex[R, T, P]
	order   []R
}

func NewResourceMap[R comparable, T Instant, P any](resourceIDs ...R) *ResourceMap[R, T, P] {
	result := ResourceMap[R, T, P]{
		indexes: make(map[R]*SlotIndex[R, T, P]),
	}

	for _, resourceID := range resourceIDs {
		result.AddResource(resourceID)
	}

	return &result
}

// AddResource creates an empty index for the resource, no-op if present.
func (rm *ResourceMap[R, T, P]) AddResource(resourceID R) {
	rm.getOrCreate(resourceID)
}

func (rm *ResourceMap[R, T, P]) getOrCreate(resourceID R) *SlotIndex[R, T, P] {
	if index, exists := rm.indexes[resourceID]; exists {
		return index
	}

	index := NewSlotIndex[R, T, P](resourceID)

	rm.indexes[resourceID] = index
	rm.order = append(rm.order, resourceID)

	return index
}

// RemoveResource drops the resource together with all its slots.
func (rm *ResourceMap[R, T, P]) RemoveResource(resourceID R) error {
	if _, exists := rm.indexes[resourceID]; !exists {
		return errResourceNotFound("RemoveResource", resourceID)
	}

	delete(rm.indexes, resourceID)

	rm.order = slices.DeleteFunc(
		rm.order,
		func(id R) bool {
			return id == resourceID
		},
	)

	return nil
}

func (rm *ResourceMap[R, T, P]) Index(resourceID R) (*SlotIndex[R, T, P], bool) {
	index, exists := rm.indexes[resourceID]

	return index, exists
}

// Resources returns the resource IDs in registration order.
func (rm *ResourceMap[R, T, P]) Resources() []R {
	return slices.Clone(rm.order)
}

func (rm *ResourceMap[R, T, P]) Len() int {
	return len(rm.order)
}

// AddSlot delegates to the resource index, creating it on first use.
func (rm *ResourceMap[R, T, P]) AddSlot(resourceID R, start, end T, payload P) (bool, error) {
	// checked before getOrCreate so an invalid range leaves no empty resource.
	if errRange := validateRange("AddSlot", start, end); errRange != nil {
		return false,
			errRange
	}

	return rm.getOrCreate(resourceID).Insert(start, end, payload)
}

func (rm *ResourceMap[R, T, P]) AddSlotWithShift(resourceID R, start, end T, payload P) (Interval[T], error) {
	// checked before getOrCreate so an invalid range leaves no empty resource.
	if errRange := validateRange("AddSlotWithShift", start, end); errRange != nil {
		return Interval[T]{},
			errRange
	}

	return rm.getOrCreate(resourceID).InsertWithShift(start, end, payload)
}

func (rm *ResourceMap[R, T, P]) RemoveSlot(resourceID R, start T) (bool, error) {
	index, exists := rm.indexes[resourceID]
	if !exists {
		return false,
			errResourceNotFound("RemoveSlot", resourceID)
	}

	return index.Remove(start),
		nil
}

// SlotsAt returns, per resource, the slot containing point.
func (rm *ResourceMap[R, T, P]) SlotsAt(point T) []ResourceSlot[R, T, P] {
	var result []ResourceSlot[R, T, P]

	for _, resourceID := range rm.order {
		slot, found := rm.indexes[resourceID].SlotAt(point)
		if !found {
			continue
		}

		result = append(
			result,
			ResourceSlot[R, T, P]{
				ResourceID: resourceID,
				Slot:       slot,
			},
		)
	}

	return result
}
