package timeslots

import "fmt"

type Assignment[K comparable, R comparable, T Instant, P any] struct {
	Payload P

	CalendarKey K
	ResourceID  R

	TimeStart T
	TimeEnd   T
}

// ShiftOutcome carries where a shifted assignment landed, or why it did not.
type ShiftOutcome[T Instant] struct {
	Interval[T]

	Err error
}

func (o ShiftOutcome[T]) Placed() bool {
	return o.Err == nil
}

// AssignOutcome reports a plain assignment: Err is set when the input was
// invalid or its calendar unknown, Added is false on conflict.
type AssignOutcome struct {
	Err error

	Added bool
}

// BulkAssign applies AddSlot per assignment, in order, one result per input.
// It is not transactional: a failed item does not roll back earlier ones.
// Errors are reported as false, BulkAssignOutcomes keeps them.
func (reg *CalendarRegistry[K, R, T, P]) BulkAssign(assignments []Assignment[K, R, T, P]) []bool {
	outcomes := reg.BulkAssignOutcomes(assignments)

	results := make([]bool, len(outcomes))

	for ix, outcome := range outcomes {
		results[ix] = outcome.Added
	}

	return results
}

// BulkAssignOutcomes is BulkAssign keeping the error of every rejected item.
func (reg *CalendarRegistry[K, R, T, P]) BulkAssignOutcomes(assignments []Assignment[K, R, T, P]) []AssignOutcome {
	results := make([]AssignOutcome, len(assignments))

	for ix, assignment := range assignments {
		added, errAdd := reg.AddSlot(
			assignment.CalendarKey,
			assignment.ResourceID,
			assignment.TimeStart,
			assignment.TimeEnd,
			assignment.Payload,
		)

		results[ix] = AssignOutcome{
			Added: added,
			Err:   errAdd,
		}

		if errAdd != nil || !added {
			reg.logger.Debug().
				Err(errAdd).
				Int("position", ix).
				Str("calendar", fmt.Sprint(assignment.CalendarKey)).
				Str("resource", fmt.Sprint(assignment.ResourceID)).
				Msg("assignment not added")
		}
	}

	return results
}

// BulkAssignWithShift applies AddSlotWithShift per assignment, in order.
func (reg *CalendarRegistry[K, R, T, P]) BulkAssignWithShift(assignments []Assignment[K, R, T, P]) []ShiftOutcome[T] {
	results := make([]ShiftOutcome[T], len(assignments))

	for ix, assignment := range assignments {
		placed, errAdd := reg.AddSlotWithShift(
			assignment.CalendarKey,
			assignment.ResourceID,
			assignment.TimeStart,
			assignment.TimeEnd,
			assignment.Payload,
		)

		results[ix] = ShiftOutcome[T]{
			Interval: placed,
			Err:      errAdd,
		}

		if errAdd != nil {
			reg.logger.Debug().
				Err(errAdd).
				Int("position", ix).
				Str("calendar", fmt.Sprint(assignment.CalendarKey)).
				Msg("assignment not placed")

			continue
		}

		if placed.TimeStart != assignment.TimeStart {
			reg.logger.Debug().
				Int("position", ix).
				Str("calendar", fmt.Sprint(assignment.CalendarKey)).
				Str("resource", fmt.Sprint(assignment.ResourceID)).
				Str("placed", placed.String()).
				Msg("assignment shifted")
		}
	}

	return results
}
