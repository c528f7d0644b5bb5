package timeslots

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// CalendarSlot is a slot hit reported by a calendar fan-out.
type CalendarSlot[K comparable, R comparable, T Instant, P any] struct {
	ResourceSlot[R, T, P]

	CalendarKey K
}

type ParamsNewCalendarRegistry struct {
	Logger *zerolog.Logger
}

// CalendarRegistry owns one ResourceMap per calendar key.
// Fan-out queries report calendars in registration order.
type CalendarRegistry[K comparable, R comparable, T Instant, P any] struct {
	calendars map[K]*ResourceMap[R, T, P]
	order     []K

	logger zerolog.Logger
}

// NewCalendarRegistry accepts nil params, logging is then disabled.
func NewCalendarRegistry[K comparable, R comparable, T Instant, P any](params *ParamsNewCalendarRegistry) *CalendarRegistry[K, R, T, P] {
	logger := zerolog.Nop()

	if params != nil && params.Logger != nil {
		logger = params.Logger.With().Str("component", "calendar_registry").Logger()
	}

	return &CalendarRegistry[K, R, T, P]{
		calendars: make(map[K]*ResourceMap[R, T, P]),
		logger:    logger,
	}
}

// AddCalendar registers resources under key, nil meaning a new empty map.
// Re-registering a key with nil or with the map already held is a no-op,
// any other map fails with ErrDuplicateCalendar.
func (reg *CalendarRegistry[K, R, T, P]) AddCalendar(key K, resources *ResourceMap[R, T, P]) error {
	if existing, exists := reg.calendars[key]; exists {
		if resources == nil || resources == existing {
			return nil
		}

		return fmt.Errorf(
			"AddCalendar: %w: %v",

			ErrDuplicateCalendar,
			key,
		)
	}

	if resources == nil {
		resources = NewResourceMap[R, T, P]()
	}

	reg.calendars[key] = resources
	reg.order = append(reg.order, key)

	reg.logger.Debug().
		Str("calendar", fmt.Sprint(key)).
		Int("resources", resources.Len()).
		Msg("calendar registered")

	return nil
}

func (reg *CalendarRegistry[K, R, T, P]) RemoveCalendar(key K) bool {
	if _, exists := reg.calendars[key]; !exists {
		return false
	}

	delete(reg.calendars, key)

	reg.order = slices.DeleteFunc(
		reg.order,
		func(k K) bool {
			return k == key
		},
	)

	return true
}

func (reg *CalendarRegistry[K, R, T, P]) Calendar(key K) (*ResourceMap[R, T, P], bool) {
	resources, exists := reg.calendars[key]

	return resources, exists
}

// CalendarKeys returns the keys in registration order.
func (reg *CalendarRegistry[K, R, T, P]) CalendarKeys() []K {
	return slices.Clone(reg.order)
}

func (reg *CalendarRegistry[K, R, T, P]) lookup(caller string, key K) (*ResourceMap[R, T, P], error) {
	resources, exists := reg.calendars[key]
	if !exists {
		return nil,
			errCalendarNotFound(caller, key)
	}

	return resources, nil
}

func (reg *CalendarRegistry[K, R, T, P]) AddResource(key K, resourceID R) error {
	resources, errLookup := reg.lookup("AddResource", key)
	if errLookup != nil {
		return errLookup
	}

	resources.AddResource(resourceID)

	return nil
}

func (reg *CalendarRegistry[K, R, T, P]) AddSlot(key K, resourceID R, start, end T, payload P) (bool, error) {
	resources, errLookup := reg.lookup("AddSlot", key)
	if errLookup != nil {
		return false,
			errLookup
	}

	return resources.AddSlot(resourceID, start, end, payload)
}

func (reg *CalendarRegistry[K, R, T, P]) AddSlotWithShift(key K, resourceID R, start, end T, payload P) (Interval[T], error) {
	resources, errLookup := reg.lookup("AddSlotWithShift", key)
	if errLookup != nil {
		return Interval[T]{},
			errLookup
	}

	return resources.AddSlotWithShift(resourceID, start, end, payload)
}

// SlotsAt is the single calendar form of AllSlotsAt.
func (reg *CalendarRegistry[K, R, T, P]) SlotsAt(key K, point T) ([]ResourceSlot[R, T, P], error) {
	resources, errLookup := reg.lookup("SlotsAt", key)
	if errLookup != nil {
		return nil,
			errLookup
	}

	return resources.SlotsAt(point),
		nil
}

func (reg *CalendarRegistry[K, R, T, P]) AllSlotsAt(point T) []CalendarSlot[K, R, T, P] {
	var result []CalendarSlot[K, R, T, P]

	for _, key := range reg.order {
		for _, hit := range reg.calendars[key].SlotsAt(point) {
			result = append(
				result,
				CalendarSlot[K, R, T, P]{
					CalendarKey:  key,
					ResourceSlot: hit,
				},
			)
		}
	}

	return result
}
