package timeslots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreeIntervals(t *testing.T) {
	targetInterval := Interval[int64]{
		TimeStart: now,
		TimeEnd:   now + 2*oneHour,
	}

	tests := []struct {
		name              string
		schedule          [][2]int64
		search            Interval[int64]
		expectedIntervals []Interval[int64]
		expectedAvailable bool
	}{
		{
			name:              "1. Empty schedule - fully available",
			search:            targetInterval,
			expectedAvailable: true,
		},
		{
			name: "2. Busy at both ends - gap in the middle",
			schedule: [][2]int64{
				{now, now + oneHour},
				{now + 2*oneHour, now + 3*oneHour},
			},
			search: targetInterval,
			expectedIntervals: []Interval[int64]{
				{TimeStart: now + oneHour, TimeEnd: now + 2*oneHour},
			},
		},
		{
			name: "3. Busy in the middle - gaps around",
			schedule: [][2]int64{
				{now + oneHour, now + oneHour + halfHour},
			},
			search: targetInterval,
			expectedIntervals: []Interval[int64]{
				{TimeStart: now, TimeEnd: now + oneHour},
				{TimeStart: now + oneHour + halfHour, TimeEnd: now + 2*oneHour},
			},
		},
		{
			name: "4. Slot started before the window",
			schedule: [][2]int64{
				{now - oneHour, now + halfHour},
			},
			search: targetInterval,
			expectedIntervals: []Interval[int64]{
				{TimeStart: now + halfHour, TimeEnd: now + 2*oneHour},
			},
		},
		{
			name: "5. Fully booked",
			schedule: [][2]int64{
				{now - oneHour, now + oneHour},
				{now + oneHour, now + oneDay},
			},
			search: targetInterval,
		},
		{
			name: "6. Touching the window edges only",
			schedule: [][2]int64{
				{now - oneHour, now},
				{now + 2*oneHour, now + 3*oneHour},
			},
			search:            targetInterval,
			expectedAvailable: true,
		},
		{
			name:   "7. Empty window",
			search: Interval[int64]{TimeStart: now, TimeEnd: now},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				index := newTestIndex(t, "resource", tt.schedule...)

				intervals, isAvailable := index.FreeIntervals(tt.search)
				require.Equal(t, tt.expectedAvailable, isAvailable)
				require.Equal(t, tt.expectedIntervals, intervals)
			},
		)
	}
}
