package timeslots

// FreeIntervals returns:
//   - (nil, true)    = fully available (no stored slot intersects the window)
//   - (gaps, false)  = partially available (returns the free gaps, ascending)
//   - (nil, false)   = completely unavailable (window is fully booked)
func (idx *SlotIndex[R, T, P]) FreeIntervals(searchInterval Interval[T]) ([]Interval[T], bool) {
	if searchInterval.TimeStart >= searchInterval.TimeEnd {
		return nil,
			false
	}

	var (
		availableIntervals []Interval[T]
		hasOverlap         bool
	)

	currentStart := searchInterval.TimeStart

	consume := func(busy Slot[T, P]) {
		if busy.End <= currentStart || busy.Start >= searchInterval.TimeEnd {
			return
		}

		hasOverlap = true

		if busy.Start > currentStart {
			availableIntervals = append(
				availableIntervals,
				Interval[T]{
					TimeStart: currentStart,
					TimeEnd:   busy.Start,
				},
			)
		}

		currentStart = max(currentStart, busy.End)
	}

	// the slot started before the window may still cover its beginning
	if previous, exists := idx.Predecessor(searchInterval.TimeStart); exists {
		consume(previous)
	}

	for busy := range idx.Range(searchInterval.TimeStart, searchInterval.TimeEnd) {
		consume(busy)
	}

	if !hasOverlap {
		return nil,
			true
	}

	if currentStart < searchInterval.TimeEnd {
		availableIntervals = append(
			availableIntervals,
			Interval[T]{
				TimeStart: currentStart,
				TimeEnd:   searchInterval.TimeEnd,
			},
		)
	}

	return availableIntervals,
		false
}
