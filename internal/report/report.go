// Package report exports the roster with derived scores and due days as a spreadsheet
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/schedule"
	"github.com/localnerve/guardroster/internal/scoring"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetGuards      = "Guards"
	SheetInspections = "Inspections"
	SheetExercises   = "Exercises"
)

const dateLayout = "2006-01-02"

var (
	guardHeader = []interface{}{
		"Name", "ID Number", "Phone",
		"Last Inspection", "Days To Inspection", "Inspection Band",
		"Last Exercise", "Days To Exercise", "Exercise Band",
	}
	inspectionHeader = []interface{}{
		"Date", "Guard", "Inspector",
		"Equipment", "Post", "Knowledge", "Total", "Max", "Percent", "Tier",
	}
	exerciseHeader = []interface{}{
		"Date", "Guard", "Instructor", "Type",
		"Checklist", "Qualitative", "Evaluator", "Total", "Tier",
	}
)

// Data is everything a report is built from
type Data struct {
	Guards      []models.Guard
	Inspections []models.Inspection
	Exercises   []models.Exercise
}

// Build creates the workbook. now fixes the due day computation.
func Build(data Data, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetGuards); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetInspections, SheetExercises} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	names := make(map[string]string, len(data.Guards))
	for _, g := range data.Guards {
		names[g.ID] = g.FullName()
	}

	if err := writeGuards(f, data, now); err != nil {
		return nil, err
	}
	if err := writeInspections(f, data.Inspections, names); err != nil {
		return nil, err
	}
	if err := writeExercises(f, data.Exercises, names); err != nil {
		return nil, err
	}

	return f, nil
}

// Write builds the workbook and writes it as xlsx
func Write(w io.Writer, data Data, now time.Time) error {
	f, err := Build(data, now)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeGuards(f *excelize.File, data Data, now time.Time) error {
	lastInspection := schedule.LastInspections(data.Inspections)
	lastExercise := schedule.LastExercises(data.Exercises)

	rows := [][]interface{}{guardHeader}
	for _, g := range data.Guards {
		row := []interface{}{g.FullName(), g.IDNumber, g.Phone}
		row = append(row, dueColumns(lastInspection, g.ID, schedule.InspectionIntervalDays, schedule.InspectionBand, now)...)
		row = append(row, dueColumns(lastExercise, g.ID, schedule.ExerciseIntervalDays, schedule.ExerciseBand, now)...)
		rows = append(rows, row)
	}
	return writeRows(f, SheetGuards, rows)
}

func dueColumns(last map[string]time.Time, guardID string, interval int, band func(int) schedule.Band, now time.Time) []interface{} {
	at, ok := last[guardID]
	if !ok {
		return []interface{}{"", schedule.DaysUntilNext(nil, interval, now), string(band(0))}
	}
	return []interface{}{
		at.Format(dateLayout),
		schedule.DaysUntilNext(&at, interval, now),
		string(band(schedule.Remaining(&at, interval, now))),
	}
}

func writeInspections(f *excelize.File, inspections []models.Inspection, names map[string]string) error {
	rows := [][]interface{}{inspectionHeader}
	for _, i := range inspections {
		b := scoring.ScoreInspection(i)
		rows = append(rows, []interface{}{
			i.Date.Format(dateLayout), guardName(names, i.GuardID), i.InspectorName,
			b.Category1, b.Category2, b.Category3, b.Total, b.Max,
			fmt.Sprintf("%.0f%%", b.Percent()), string(scoring.TierFor(b.Total)),
		})
	}
	return writeRows(f, SheetInspections, rows)
}

func writeExercises(f *excelize.File, exercises []models.Exercise, names map[string]string) error {
	rows := [][]interface{}{exerciseHeader}
	for _, e := range exercises {
		b := scoring.ScoreExercise(e)
		rows = append(rows, []interface{}{
			e.Date.Format(dateLayout), guardName(names, e.GuardID), e.InstructorName, e.ExerciseType,
			b.Checklist, b.Qualitative, b.Evaluator, b.Total,
			string(scoring.TierFor(float64(b.Total))),
		})
	}
	return writeRows(f, SheetExercises, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, r+1, err)
		}
	}
	return nil
}

// guardName falls back to the id for records whose guard is gone
func guardName(names map[string]string, guardID string) string {
	if name, ok := names[guardID]; ok {
		return name
	}
	return guardID
}
