// scoring.go
//
// guardroster: guard, inspection and exercise records service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of guardroster.
// guardroster is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// guardroster is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with guardroster.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package scoring maps ratings to points and totals inspections and exercises.
// Scores are never stored; every surface that shows one derives it here.
package scoring

import "github.com/localnerve/guardroster/internal/models"

// Point values on the inspection scales
const (
	StandardExcellent = 7.0
	StandardGood      = 3.5

	ProcedureExcellent = 30.0
	ProcedureGood      = 15.0

	// InspectionBaseMax is the ceiling with no procedure tests selected
	InspectionBaseMax = 56.0
	// Category3BaseMax covers entrance procedures and officer knowledge
	Category3BaseMax = 14.0
)

// Point values on the exercise scales
const (
	QualitativeExcellent = 10
	QualitativeGood      = 5

	ChecklistMax = 10
	EvaluatorMax = 20
	ExerciseMax  = 4*ChecklistMax + 4*QualitativeExcellent + EvaluatorMax
)

// Tier is a presentation band for a total score
type Tier string

const (
	TierGood    Tier = "good"
	TierWarning Tier = "warning"
	TierPoor    Tier = "poor"
)

// StandardPoints scores one standard inspection field
func StandardPoints(r models.RatingValue) float64 {
	switch r {
	case models.RatingExcellent:
		return StandardExcellent
	case models.RatingGood:
		return StandardGood
	}
	return 0
}

// ProcedurePoints scores one selected procedure test
func ProcedurePoints(r models.RatingValue) float64 {
	switch r {
	case models.RatingExcellent:
		return ProcedureExcellent
	case models.RatingGood:
		return ProcedureGood
	}
	return 0
}

// QualitativePoints scores one exercise response rating
func QualitativePoints(q models.QualitativeRating) int {
	switch q {
	case models.QualitativeExcellent:
		return QualitativeExcellent
	case models.QualitativeGood:
		return QualitativeGood
	}
	return 0
}

// Breakdown is an inspection score split the way the inspection form groups it
type Breakdown struct {
	Category1 float64 `json:"category1"` // equipment
	Category2 float64 `json:"category2"` // post
	Category3 float64 `json:"category3"` // procedures and knowledge
	Total     float64 `json:"total"`
	Max       float64 `json:"max"`
}

// Category3Max is the ceiling for the procedures category
func (b Breakdown) Category3Max() float64 {
	return b.Max - (InspectionBaseMax - Category3BaseMax)
}

// Percent is Total as a share of Max
func (b Breakdown) Percent() float64 {
	if b.Max == 0 {
		return 0
	}
	return b.Total / b.Max * 100
}

// MaxInspectionScore is the ceiling for an inspection with p procedure tests
func MaxInspectionScore(p int) float64 {
	return InspectionBaseMax + ProcedureExcellent*float64(p)
}

// ScoreInspection totals an inspection
func ScoreInspection(i models.Inspection) Breakdown {
	var b Breakdown

	for _, r := range []models.RatingValue{i.UniformComplete, i.GuardBadgeValid, i.PersonalWeapon, i.FullMagazine} {
		b.Category1 += StandardPoints(r)
	}
	for _, r := range []models.RatingValue{i.ValidCommunication, i.EntranceGateOperational, i.ScanLogComplete, i.ProceduresBooklet} {
		b.Category2 += StandardPoints(r)
	}
	for _, p := range i.SelectedProcedures {
		b.Category3 += ProcedurePoints(p.Rating)
	}
	b.Category3 += StandardPoints(i.EntranceProcedures) + StandardPoints(i.SecurityOfficerKnowledge)

	b.Total = b.Category1 + b.Category2 + b.Category3
	b.Max = MaxInspectionScore(len(i.SelectedProcedures))
	return b
}

// ExerciseBreakdown is an exercise score split by section
type ExerciseBreakdown struct {
	Checklist   int `json:"checklist"`
	Qualitative int `json:"qualitative"`
	Evaluator   int `json:"evaluator"`
	Total       int `json:"total"`
}

// ScoreExercise totals an exercise. Checklist and evaluator scores are
// taken as supplied; the paired checklist flags do not affect them.
func ScoreExercise(e models.Exercise) ExerciseBreakdown {
	var b ExerciseBreakdown
	for _, s := range e.ChecklistScores() {
		b.Checklist += s
	}
	for _, q := range e.QualitativeRatings() {
		b.Qualitative += QualitativePoints(q)
	}
	b.Evaluator = e.KabtEvaluation
	b.Total = b.Checklist + b.Qualitative + b.Evaluator
	return b
}

// TierFor bands a total score: above 80 good, 60 to 80 warning, below 60 poor
func TierFor(score float64) Tier {
	switch {
	case score > 80:
		return TierGood
	case score >= 60:
		return TierWarning
	}
	return TierPoor
}
