package sender

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlanThreeItemsFiveSeconds(t *testing.T) {
	plan := Plan(3, 5*time.Second)

	require.Equal(t, 15*time.Second, plan.Total)
	require.Equal(t, []Slot{
		{Index: 0, At: 5 * time.Second, Remaining: 10 * time.Second},
		{Index: 1, At: 10 * time.Second, Remaining: 5 * time.Second},
		{Index: 2, At: 15 * time.Second, Remaining: 0},
	}, plan.Slots)
}

func TestPlanEmpty(t *testing.T) {
	plan := Plan(0, 5*time.Second)

	require.Equal(t, time.Duration(0), plan.Total)
	require.Empty(t, plan.Slots)
}

func TestPlanExactlyNSlots(t *testing.T) {
	for n := 1; n <= 50; n++ {
		delay := time.Duration(n%7+1) * time.Second
		plan := Plan(n, delay)

		require.Len(t, plan.Slots, n)
		require.Equal(t, time.Duration(n)*delay, plan.Total)
		require.Equal(t, time.Duration(0), plan.Slots[n-1].Remaining)
		for i := 1; i < n; i++ {
			require.Equal(t, delay, plan.Slots[i].At-plan.Slots[i-1].At)
		}
	}
}

func TestPlanZeroDelay(t *testing.T) {
	plan := Plan(2, 0)

	require.Equal(t, time.Duration(0), plan.Total)
	require.Len(t, plan.Slots, 2)
}
