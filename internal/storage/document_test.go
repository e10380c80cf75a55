package storage

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gonga3/study-planner/internal/planner"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleState(t)
	data, err := Encode(want)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assertStateEqual(t, want, got)
}

func TestEncodeShape(t *testing.T) {
	data, err := Encode(sampleState(t))
	require.NoError(t, err)

	assert.Contains(t, string(data), "آناتومی", "non-ASCII text is written verbatim")
	assert.Contains(t, string(data), "Circuits <lab>", "HTML characters are not escaped")
	assert.Contains(t, string(data), `"created_at": "2026-10-19 14:05"`)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))
	assert.Len(t, top, 6)
	for _, key := range []string{FieldEvenWeek, FieldOddWeek, FieldTasks, FieldPositiveHabits, FieldNegativeHabits, FieldHundredDays} {
		assert.Contains(t, top, key)
	}

	var days map[string]bool
	require.NoError(t, json.Unmarshal(top[FieldHundredDays], &days))
	assert.Len(t, days, 100)
	assert.True(t, days["100"])
	assert.False(t, days["99"])

	var sched map[string][]map[string]string
	require.NoError(t, json.Unmarshal(top[FieldEvenWeek], &sched))
	assert.Len(t, sched, 7)
}

func TestDecodeAbsentFieldsUseDefaults(t *testing.T) {
	got, err := Decode([]byte(`{"daily_tasks": [{"id": 1, "title": "x", "duration": 30, "priority": "زیاد", "completed": false, "created_at": "2026-10-01 08:15"}]}`))
	require.NoError(t, err)

	def := planner.Defaults()
	assert.Equal(t, def.EvenWeek, got.EvenWeek)
	assert.Equal(t, def.PositiveHabits, got.PositiveHabits)
	assert.Equal(t, def.NegativeHabits, got.NegativeHabits)
	assert.Equal(t, def.Challenge, got.Challenge)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, planner.PriorityHigh, got.Tasks[0].Priority)
	assert.Equal(t, "2026-10-01 08:15", got.Tasks[0].CreatedAt.Format(CreatedAtLayout))
}

func TestDecodeEmptyObject(t *testing.T) {
	got, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, planner.Defaults(), got)
}

func TestDecodeMalformedFieldIsLocal(t *testing.T) {
	doc := `{
		"daily_tasks": "not a list",
		"hundred_days": {"1": true, "2": "yes"},
		"positive_habits": {"Reading": {"streak": 4, "history": ["2026-10-01"]}},
		"odd_week_schedule": {"جمعه": [{"name": "Seminar", "start": "9:00", "end": "11:00"}]}
	}`
	got, err := Decode([]byte(doc))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Len(t, loadErr.Fields, 2)
	assert.True(t, loadErr.Has(FieldTasks))
	assert.True(t, loadErr.Has(FieldHundredDays))
	assert.False(t, loadErr.Has(FieldPositiveHabits))

	assert.Empty(t, got.Tasks)
	assert.Equal(t, planner.ChallengeGrid{}, got.Challenge)
	assert.Equal(t, 4, got.PositiveHabits["Reading"].Streak)
	assert.NotContains(t, got.PositiveHabits, "ورزش")
	assert.Len(t, got.OddWeek[planner.Friday], 1)
	assert.Empty(t, got.OddWeek[planner.Saturday])
}

func TestDecodeRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		FieldEvenWeek:       `{"even_week_schedule": {"Caturday": []}}`,
		FieldHundredDays:    `{"hundred_days": {"101": true}}`,
		FieldTasks:          `{"daily_tasks": [{"id": 1, "title": "x", "priority": "urgent"}]}`,
		FieldNegativeHabits: `{"negative_habits": null}`,
		FieldPositiveHabits: `{"positive_habits": {"x": {"streak": -1}}}`,
	}
	for field, doc := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := Decode([]byte(doc))
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "got %v", err)
			assert.True(t, loadErr.Has(field))
		})
	}
}

func TestDecodeCorruptDocument(t *testing.T) {
	for _, doc := range []string{`{"daily_tasks": [`, `[1, 2, 3]`, `garbage`, `null`} {
		got, err := Decode([]byte(doc))
		assert.ErrorIs(t, err, ErrCorruptDocument, doc)
		assert.Equal(t, planner.Defaults(), got)
	}
}

func TestDecodePartialGridFillsFalse(t *testing.T) {
	got, err := Decode([]byte(`{"hundred_days": {"3": true}}`))
	require.NoError(t, err)
	summary := got.Challenge.Summary()
	assert.Equal(t, 1, summary.Completed)
	assert.True(t, got.Challenge.Done(3))
}

func TestEncodeWritesCreatedAtInLocalTime(t *testing.T) {
	saved := time.Local
	time.Local = time.FixedZone("IRST", 3*3600+30*60)
	t.Cleanup(func() { time.Local = saved })

	st := planner.Defaults()
	created := time.Date(2026, 10, 19, 14, 5, 0, 0, time.UTC)
	st.Tasks = []planner.Task{{ID: 1, Title: "Read", DurationMinutes: 30, Priority: planner.PriorityLow, CreatedAt: created}}

	body, err := Encode(st)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"created_at": "2026-10-19 17:35"`)

	got, err := Decode(body)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.True(t, created.Equal(got.Tasks[0].CreatedAt), "got %v", got.Tasks[0].CreatedAt)
}
