package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gonga3/study-planner/internal/planner"
)

var testNow = time.Date(2026, 10, 19, 14, 5, 0, 0, time.Local)

// sampleState exercises every field of the document.
func sampleState(t *testing.T) planner.State {
	t.Helper()
	s := planner.Defaults()
	var ok bool
	s, ok = s.AddClass(planner.Saturday, "آناتومی", "8:00", "10:00", planner.ScopeBoth)
	require.True(t, ok)
	s, ok = s.AddClass(planner.Saturday, "Biochemistry", "10:00", "12:00", planner.ScopeEven)
	require.True(t, ok)
	s, ok = s.AddClass(planner.Wednesday, "Circuits <lab>", "13:30", "15:00", planner.ScopeOdd)
	require.True(t, ok)

	s, _, ok = s.AddTask(planner.NewTask{Title: "Review notes", DurationMinutes: 45, Priority: planner.PriorityHigh}, testNow)
	require.True(t, ok)
	s, _, ok = s.AddTask(planner.NewTask{Title: "Lab report", DurationMinutes: 120, Priority: planner.PriorityMedium}, testNow)
	require.True(t, ok)
	s, ok = s.CompleteTask(2)
	require.True(t, ok)

	s, ok = s.MarkToday("ورزش", testNow)
	require.True(t, ok)
	s, ok = s.StartOver("دیر خوابیدن", testNow)
	require.True(t, ok)

	for _, n := range []int{1, 2, 50, 100} {
		s, ok = s.ToggleDay(n)
		require.True(t, ok)
	}
	return s
}

func assertStateEqual(t *testing.T, want, got planner.State) {
	t.Helper()
	assert.Equal(t, want.EvenWeek, got.EvenWeek)
	assert.Equal(t, want.OddWeek, got.OddWeek)
	assert.Equal(t, want.PositiveHabits, got.PositiveHabits)
	assert.Equal(t, want.NegativeHabits, got.NegativeHabits)
	assert.Equal(t, want.Challenge, got.Challenge)
	require.Len(t, got.Tasks, len(want.Tasks))
	for i := range want.Tasks {
		w, g := want.Tasks[i], got.Tasks[i]
		assert.True(t, w.CreatedAt.Equal(g.CreatedAt), "task %d created_at: want %v got %v", i, w.CreatedAt, g.CreatedAt)
		w.CreatedAt, g.CreatedAt = time.Time{}, time.Time{}
		assert.Equal(t, w, g)
	}
}
