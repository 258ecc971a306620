package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/localnerve/guardroster/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample(now time.Time) Data {
	excellent := models.RatingExcellent
	inspection := models.Inspection{
		ID: "i1", GuardID: "g1", Date: now.AddDate(0, 0, -10), InspectorName: "רונית",
		UniformComplete: excellent, GuardBadgeValid: excellent, PersonalWeapon: excellent, FullMagazine: excellent,
		ValidCommunication: excellent, EntranceGateOperational: excellent, ScanLogComplete: excellent, ProceduresBooklet: excellent,
		EntranceProcedures: excellent, SecurityOfficerKnowledge: models.RatingGood,
	}
	exercise := models.Exercise{
		ID: "e1", GuardID: "g1", Date: now.AddDate(0, 0, -100), InstructorName: "יוסי", ExerciseType: "חדירה",
		IdentifiedThreatScore: 10, ReportedOnRadioScore: 10, UpdatedKabtScore: 10, UpdatedCoordinatorScore: 10,
		ResponseSpeed: models.QualitativeExcellent, SituationControl: models.QualitativeExcellent,
		ConfidenceUnderPressure: models.QualitativeExcellent, WorkedByProcedure: models.QualitativeExcellent,
		KabtEvaluation: 20,
	}
	return Data{
		Guards: []models.Guard{
			{ID: "g1", FirstName: "דוד", LastName: "כהן", IDNumber: "123456789", Phone: "0501234567"},
			{ID: "g2", FirstName: "דנה", LastName: "לוי", IDNumber: "111111111", Phone: "0541111111"},
		},
		Inspections: []models.Inspection{inspection},
		Exercises:   []models.Exercise{exercise},
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f, err := Build(sample(now), now)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetGuards, SheetInspections, SheetExercises}, f.GetSheetList())

	guards, err := f.GetRows(SheetGuards)
	require.NoError(t, err)
	require.Len(t, guards, 3)
	assert.Equal(t, []string{"דוד כהן", "123456789", "0501234567", "2026-02-19", "20", "good", "2025-11-21", "80", "warning"}, guards[1])
	assert.Equal(t, "0", guards[2][4])
	assert.Equal(t, "poor", guards[2][5])

	inspections, err := f.GetRows(SheetInspections)
	require.NoError(t, err)
	require.Len(t, inspections, 2)
	assert.Equal(t, "דוד כהן", inspections[1][1])
	assert.Equal(t, "66.5", inspections[1][6])
	assert.Equal(t, "56", inspections[1][7])
	assert.Equal(t, "warning", inspections[1][9])

	exercises, err := f.GetRows(SheetExercises)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, []string{"2025-11-21", "דוד כהן", "יוסי", "חדירה", "40", "40", "20", "100", "good"}, exercises[1])
}

func TestWrite(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(now), now))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetExercises)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestBuild_OrphanRecordShowsGuardID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data := sample(now)
	data.Guards = nil

	f, err := Build(data, now)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetInspections)
	require.NoError(t, err)
	assert.Equal(t, "g1", rows[1][1])
}
