package timeslots

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertWithShift(t *testing.T) {
	tests := []struct {
		name     string
		schedule [][2]int64
		start    int64
		end      int64
		expected Interval[int64]
	}{
		{
			name:     "1. Empty schedule - placed as requested",
			start:    11,
			end:      13,
			expected: Interval[int64]{TimeStart: 11, TimeEnd: 13},
		},
		{
			name:     "2. Start inside a slot - moved to its end",
			schedule: [][2]int64{{10, 20}},
			start:    11,
			end:      13,
			expected: Interval[int64]{TimeStart: 20, TimeEnd: 22},
		},
		{
			name:     "3. End inside a later slot - moved past it",
			schedule: [][2]int64{{10, 15}},
			start:    8,
			end:      12,
			expected: Interval[int64]{TimeStart: 15, TimeEnd: 19},
		},
		{
			name:     "4. Gap too small - skips to the next fitting gap",
			schedule: [][2]int64{{10, 15}, {16, 20}, {22, 30}},
			start:    10,
			end:      13,
			expected: Interval[int64]{TimeStart: 30, TimeEnd: 33},
		},
		{
			name:     "5. Gap exactly the duration",
			schedule: [][2]int64{{10, 15}, {18, 20}},
			start:    12,
			end:      15,
			expected: Interval[int64]{TimeStart: 15, TimeEnd: 18},
		},
		{
			name:     "6. Free before the first slot",
			schedule: [][2]int64{{10, 15}},
			start:    2,
			end:      10,
			expected: Interval[int64]{TimeStart: 2, TimeEnd: 10},
		},
		{
			name:     "7. Touching the previous slot end",
			schedule: [][2]int64{{10, 15}},
			start:    15,
			end:      16,
			expected: Interval[int64]{TimeStart: 15, TimeEnd: 16},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				index := newTestIndex(t, "alice", tt.schedule...)

				placed, errShift := index.InsertWithShift(tt.start, tt.end, "shifted")
				require.NoError(t, errShift)
				require.Equal(t, tt.expected, placed)
				require.Equal(t, tt.end-tt.start, placed.Duration())

				slot, found := index.Get(placed.TimeStart)
				require.True(t, found)
				require.Equal(t, "shifted", slot.Payload)
				require.Equal(t, placed.TimeEnd, slot.End)

				require.Equal(t, len(tt.schedule)+1, index.Len())
				requireNonOverlapping(t, index)
			},
		)
	}
}

func TestInsertWithShiftErrors(t *testing.T) {
	t.Run(
		"1. invalid range",
		func(t *testing.T) {
			index := newTestIndex(t, "alice", [2]int64{10, 20})

			_, errShift := index.InsertWithShift(13, 11, "reversed")
			require.ErrorIs(t, errShift, ErrInvalidRange)
			require.Equal(t, 1, index.Len())
		},
	)

	t.Run(
		"2. no room left on the time axis",
		func(t *testing.T) {
			index := NewSlotIndex[string, int8, string]("alice")

			added, errInsert := index.Insert(100, 127, "busy")
			require.NoError(t, errInsert)
			require.True(t, added)

			_, errShift := index.InsertWithShift(110, 120, "late")
			require.ErrorIs(t, errShift, ErrShiftOverflow)
			require.Equal(t, 1, index.Len())
		},
	)
}

func TestFindAvailableStartPacked(t *testing.T) {
	packed := make([][2]int64, 0, 100)

	for i := range int64(100) {
		packed = append(packed, [2]int64{i * 10, i*10 + 10})
	}

	index := newTestIndex(t, "packed", packed...)

	start, errFind := index.findAvailableStart(5, 1)
	require.NoError(t, errFind)
	require.EqualValues(t, 1000, start, "walks past every packed slot")

	start, errFind = index.findAvailableStart(995, 10)
	require.NoError(t, errFind)
	require.EqualValues(t, 1000, start)

	start, errFind = index.findAvailableStart(1000, 1)
	require.NoError(t, errFind)
	require.EqualValues(t, 1000, start)
	require.Equal(t, 100, index.Len(), "search does not mutate")
}

// The placement must be the smallest valid start, checked by brute force.
func TestInsertWithShiftIsMinimal(t *testing.T) {
	random := rand.New(rand.NewSource(11))

	index := NewSlotIndex[string, int64, int]("fuzz")

	fits := func(start, end int64) bool {
		for _, slot := range index.All() {
			if slot.Start < end && start < slot.End {
				return false
			}
		}

		return true
	}

	for i := range 300 {
		start := random.Int63n(500)
		duration := 1 + random.Int63n(15)

		expected := start
		for !fits(expected, expected+duration) {
			expected++
		}

		placed, errShift := index.InsertWithShift(start, start+duration, i)
		require.NoError(t, errShift)
		require.Equal(t, expected, placed.TimeStart, "request [%d-%d)", start, start+duration)
		require.Equal(t, duration, placed.Duration())

		requireNonOverlapping(t, index)
	}
}
