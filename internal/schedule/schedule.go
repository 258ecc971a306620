// Package schedule computes how many days remain before a guard's next
// inspection or exercise is due, and orders guards by urgency.
package schedule

import (
	"math"
	"sort"
	"time"

	"github.com/localnerve/guardroster/internal/models"
)

// Due windows, in days
const (
	InspectionIntervalDays = 30
	ExerciseIntervalDays   = 180
)

// Reminder thresholds. Inspections and exercises are tuned separately.
const (
	InspectionDueSoonDays = 7
	InspectionGoodDays    = 15
	InspectionWarningDays = 5

	ExerciseDueSoonDays = 30
	ExerciseGoodDays    = 90
	ExerciseWarningDays = 30
)

const day = 24 * time.Hour

// Band is a presentation severity for a remaining-days timer
type Band string

const (
	BandGood    Band = "good"
	BandWarning Band = "warning"
	BandPoor    Band = "poor"
)

// DaysUntilNext returns ceil((last + interval - now) / 1 day).
// No prior activity counts as due now and returns 0. Negative means overdue.
func DaysUntilNext(last *time.Time, intervalDays int, now time.Time) int {
	if last == nil {
		return 0
	}
	next := last.AddDate(0, 0, intervalDays)
	days := math.Ceil(float64(next.Sub(now)) / float64(day))
	if days == 0 {
		// avoid -0 from a fraction of a day past due
		return 0
	}
	return int(days)
}

// Remaining is the timer view of the due window: whole days left, clamped to [0, interval]
func Remaining(last *time.Time, intervalDays int, now time.Time) int {
	if last == nil {
		return 0
	}
	since := int(math.Floor(float64(now.Sub(*last)) / float64(day)))
	left := intervalDays - since
	if left < 0 {
		return 0
	}
	if left > intervalDays {
		return intervalDays
	}
	return left
}

// InspectionBand bands a remaining-days timer on the 30 day inspection cycle
func InspectionBand(remaining int) Band {
	switch {
	case remaining >= InspectionGoodDays:
		return BandGood
	case remaining >= InspectionWarningDays:
		return BandWarning
	}
	return BandPoor
}

// ExerciseBand bands a remaining-days timer on the 180 day exercise cycle
func ExerciseBand(remaining int) Band {
	switch {
	case remaining >= ExerciseGoodDays:
		return BandGood
	case remaining >= ExerciseWarningDays:
		return BandWarning
	}
	return BandPoor
}

// Latest finds the most recent activity date per guard
func Latest[T any](records []T, key func(T) (string, time.Time)) map[string]time.Time {
	latest := make(map[string]time.Time, len(records))
	for _, r := range records {
		guardID, at := key(r)
		if cur, ok := latest[guardID]; !ok || at.After(cur) {
			latest[guardID] = at
		}
	}
	return latest
}

// LastInspections maps guard id to the date of its latest inspection
func LastInspections(inspections []models.Inspection) map[string]time.Time {
	return Latest(inspections, func(i models.Inspection) (string, time.Time) { return i.GuardID, i.Date })
}

// LastExercises maps guard id to the date of its latest exercise
func LastExercises(exercises []models.Exercise) map[string]time.Time {
	return Latest(exercises, func(e models.Exercise) (string, time.Time) { return e.GuardID, e.Date })
}

// Reminder is one guard's standing against a due window
type Reminder struct {
	Guard         models.Guard `json:"guard"`
	LastActivity  *time.Time   `json:"lastActivity"`
	DaysUntilNext int          `json:"daysUntilNext"`
	IsOverdue     bool         `json:"isOverdue"`
	IsDueSoon     bool         `json:"isDueSoon"`
}

// Reminders computes every guard's standing and orders them most urgent first.
// Ties keep the order of the guards slice.
func Reminders(guards []models.Guard, last map[string]time.Time, intervalDays, dueSoonDays int, now time.Time) []Reminder {
	out := make([]Reminder, 0, len(guards))
	for _, g := range guards {
		var lastAt *time.Time
		if at, ok := last[g.ID]; ok {
			lastAt = &at
		}
		days := DaysUntilNext(lastAt, intervalDays, now)
		out = append(out, Reminder{
			Guard:         g,
			LastActivity:  lastAt,
			DaysUntilNext: days,
			IsOverdue:     days < 0,
			IsDueSoon:     days >= 0 && days <= dueSoonDays,
		})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].DaysUntilNext < out[b].DaysUntilNext
	})
	return out
}

// InspectionReminders orders guards by their next inspection
func InspectionReminders(guards []models.Guard, inspections []models.Inspection, now time.Time) []Reminder {
	return Reminders(guards, LastInspections(inspections), InspectionIntervalDays, InspectionDueSoonDays, now)
}

// ExerciseReminders orders guards by their next exercise
func ExerciseReminders(guards []models.Guard, exercises []models.Exercise, now time.Time) []Reminder {
	return Reminders(guards, LastExercises(exercises), ExerciseIntervalDays, ExerciseDueSoonDays, now)
}
