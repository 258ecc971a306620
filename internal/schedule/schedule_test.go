package schedule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) *time.Time {
	t := now.Add(-time.Duration(d * float64(24*time.Hour)))
	return &t
}

func TestDaysUntilNext_NoActivity(t *testing.T) {
	for _, interval := range []int{0, 1, InspectionIntervalDays, ExerciseIntervalDays} {
		assert.Equal(t, 0, DaysUntilNext(nil, interval, now))
	}
}

func TestDaysUntilNext(t *testing.T) {
	tests := []struct {
		name     string
		last     *time.Time
		interval int
		want     int
	}{
		{"due exactly today", daysAgo(30), 30, 0},
		{"exercise due exactly today", daysAgo(180), 180, 0},
		{"just inspected", daysAgo(0), 30, 30},
		{"partial day rounds up", daysAgo(10.5), 30, 20},
		{"half a day overdue", daysAgo(30.5), 30, 0},
		{"overdue", daysAgo(35), 30, -5},
		{"exercise remaining", daysAgo(100), 180, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilNext(tt.last, tt.interval, now))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 0, Remaining(nil, ExerciseIntervalDays, now))
	assert.Equal(t, 180, Remaining(daysAgo(0.2), ExerciseIntervalDays, now))
	assert.Equal(t, 80, Remaining(daysAgo(100.7), ExerciseIntervalDays, now))
	assert.Equal(t, 0, Remaining(daysAgo(400), ExerciseIntervalDays, now))

	future := now.Add(72 * time.Hour)
	assert.Equal(t, 30, Remaining(&future, InspectionIntervalDays, now))
}

func TestBands(t *testing.T) {
	assert.Equal(t, BandGood, ExerciseBand(180))
	assert.Equal(t, BandGood, ExerciseBand(90))
	assert.Equal(t, BandWarning, ExerciseBand(89))
	assert.Equal(t, BandWarning, ExerciseBand(30))
	assert.Equal(t, BandPoor, ExerciseBand(29))
	assert.Equal(t, BandPoor, ExerciseBand(0))

	assert.Equal(t, BandGood, InspectionBand(15))
	assert.Equal(t, BandWarning, InspectionBand(14))
	assert.Equal(t, BandWarning, InspectionBand(5))
	assert.Equal(t, BandPoor, InspectionBand(4))
}

func TestReminders_OrderAndFlags(t *testing.T) {
	guards := []models.Guard{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}
	inspections := []models.Inspection{
		{GuardID: "a", Date: *daysAgo(2)},
		{GuardID: "a", Date: *daysAgo(20)},
		{GuardID: "b", Date: *daysAgo(40)},
		{GuardID: "c", Date: *daysAgo(25)},
		{GuardID: "e", Date: *daysAgo(25)},
	}

	got := InspectionReminders(guards, inspections, now)

	order := make([]string, len(got))
	for i, r := range got {
		order[i] = r.Guard.ID
	}
	// d has no inspection (0) and sorts between overdue b and the due-soon pair
	if diff := cmp.Diff([]string{"b", "d", "c", "e", "a"}, order); diff != "" {
		t.Errorf("reminder order mismatch (-want +got):\n%s", diff)
	}

	byID := make(map[string]Reminder, len(got))
	for _, r := range got {
		byID[r.Guard.ID] = r
	}
	assert.True(t, byID["b"].IsOverdue)
	assert.False(t, byID["b"].IsDueSoon)
	assert.Equal(t, -10, byID["b"].DaysUntilNext)

	assert.Nil(t, byID["d"].LastActivity)
	assert.True(t, byID["d"].IsDueSoon)

	assert.True(t, byID["c"].IsDueSoon)
	assert.Equal(t, 5, byID["c"].DaysUntilNext)

	assert.Equal(t, 28, byID["a"].DaysUntilNext)
	assert.False(t, byID["a"].IsDueSoon)
	assert.Equal(t, *daysAgo(2), *byID["a"].LastActivity)
}

func TestExerciseReminders(t *testing.T) {
	guards := []models.Guard{{ID: "a"}, {ID: "b"}}
	exercises := []models.Exercise{
		{GuardID: "a", Date: *daysAgo(10)},
		{GuardID: "b", Date: *daysAgo(160)},
	}

	got := ExerciseReminders(guards, exercises, now)

	assert.Equal(t, "b", got[0].Guard.ID)
	assert.Equal(t, 20, got[0].DaysUntilNext)
	assert.True(t, got[0].IsDueSoon)
	assert.Equal(t, 170, got[1].DaysUntilNext)
}
