package timeslots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	now      int64 = 1_700_000_000
	halfHour int64 = 1800
	oneHour  int64 = 3600
	oneDay   int64 = 24 * oneHour
)

type testIndex = SlotIndex[string, int64, string]

func newTestIndex(t *testing.T, resourceID string, slots ...[2]int64) *testIndex {
	t.Helper()

	index := NewSlotIndex[string, int64, string](resourceID)

	for _, slot := range slots {
		added, errInsert := index.Insert(slot[0], slot[1], "busy")
		require.NoError(t, errInsert)
		require.True(t, added, "seed slot %v", slot)
	}

	return index
}

func requireNonOverlapping[R comparable, T Instant, P any](t *testing.T, index *SlotIndex[R, T, P]) {
	t.Helper()

	slots := index.All()

	for ix := 1; ix < len(slots); ix++ {
		require.LessOrEqual(t,
			slots[ix-1].End,
			slots[ix].Start,
			"slots %v and %v overlap",
			slots[ix-1],
			slots[ix],
		)
	}
}
