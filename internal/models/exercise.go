package models

import "time"

// Exercise is a training drill record for one guard.
// Each checklist flag and its score are set independently by the caller.
type Exercise struct {
	ID                  string    `gorm:"primaryKey;size:64" json:"id"`
	GuardID             string    `gorm:"size:64;not null;index" json:"guardId"`
	Date                time.Time `gorm:"not null;index" json:"date"`
	InstructorName      string    `gorm:"size:255;not null" json:"instructorName"`
	ExerciseType        string    `gorm:"size:255;not null" json:"exerciseType"`
	ScenarioDescription string    `gorm:"type:text" json:"scenarioDescription"`

	IdentifiedThreat   bool `json:"identifiedThreat"`
	ReportedOnRadio    bool `json:"reportedOnRadio"`
	UpdatedKabt        bool `json:"updatedKabt"`
	UpdatedCoordinator bool `json:"updatedCoordinator"`

	IdentifiedThreatScore   int `gorm:"not null;default:0" json:"identifiedThreatScore"`
	ReportedOnRadioScore    int `gorm:"not null;default:0" json:"reportedOnRadioScore"`
	UpdatedKabtScore        int `gorm:"not null;default:0" json:"updatedKabtScore"`
	UpdatedCoordinatorScore int `gorm:"not null;default:0" json:"updatedCoordinatorScore"`

	ResponseSpeed           QualitativeRating `gorm:"size:32;not null" json:"responseSpeed"`
	SituationControl        QualitativeRating `gorm:"size:32;not null" json:"situationControl"`
	ConfidenceUnderPressure QualitativeRating `gorm:"size:32;not null" json:"confidenceUnderPressure"`
	WorkedByProcedure       QualitativeRating `gorm:"size:32;not null" json:"workedByProcedure"`

	KabtEvaluation int `gorm:"not null;default:0" json:"kabtEvaluation"`

	ToMaintain      string `gorm:"type:text" json:"toMaintain"`
	ToImprove       string `gorm:"type:text" json:"toImprove"`
	AdditionalNotes string `gorm:"type:text" json:"additionalNotes"`
	GuardSignature  string `gorm:"type:text" json:"guardSignature"`
	Duration        int    `gorm:"not null;default:0" json:"duration"`
	Notes           string `gorm:"type:text" json:"notes"`
}

// TableName overrides the table name for Exercise
func (Exercise) TableName() string {
	return "exercises"
}

// ChecklistScores returns the four caller-supplied response scores
func (e Exercise) ChecklistScores() []int {
	return []int{e.IdentifiedThreatScore, e.ReportedOnRadioScore, e.UpdatedKabtScore, e.UpdatedCoordinatorScore}
}

// QualitativeRatings returns the four response ratings, in form order
func (e Exercise) QualitativeRatings() []QualitativeRating {
	return []QualitativeRating{e.ResponseSpeed, e.SituationControl, e.ConfidenceUnderPressure, e.WorkedByProcedure}
}
