package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProcedureTest is a named knowledge check embedded in an Inspection
type ProcedureTest struct {
	Procedure string      `json:"procedure"`
	Rating    RatingValue `json:"rating"`
}

// Inspection is a point-in-time audit of one guard. It is never updated,
// and its score is derived on read.
type Inspection struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	GuardID       string    `gorm:"size:64;not null;index" json:"guardId"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	InspectorName string    `gorm:"size:255;not null" json:"inspectorName"`

	UniformComplete RatingValue `gorm:"size:32;not null" json:"uniformComplete"`
	GuardBadgeValid RatingValue `gorm:"size:32;not null" json:"guardBadgeValid"`
	PersonalWeapon  RatingValue `gorm:"size:32;not null" json:"personalWeapon"`
	FullMagazine    RatingValue `gorm:"size:32;not null" json:"fullMagazine"`

	ValidCommunication      RatingValue `gorm:"size:32;not null" json:"validCommunication"`
	EntranceGateOperational RatingValue `gorm:"size:32;not null" json:"entranceGateOperational"`
	ScanLogComplete         RatingValue `gorm:"size:32;not null" json:"scanLogComplete"`
	ProceduresBooklet       RatingValue `gorm:"size:32;not null" json:"proceduresBooklet"`

	SelectedProcedures       datatypes.JSONSlice[ProcedureTest] `json:"selectedProcedures"`
	EntranceProcedures       RatingValue                        `gorm:"size:32;not null" json:"entranceProcedures"`
	SecurityOfficerKnowledge RatingValue                        `gorm:"size:32;not null" json:"securityOfficerKnowledge"`

	InspectorNotes string `gorm:"type:text" json:"inspectorNotes"`
	GuardSignature string `gorm:"type:text" json:"guardSignature"`
}

// TableName overrides the table name for Inspection
func (Inspection) TableName() string {
	return "inspections"
}

// StandardRatings returns the ten fields scored on the standard scale, in form order
func (i Inspection) StandardRatings() []RatingValue {
	return []RatingValue{
		i.UniformComplete, i.GuardBadgeValid, i.PersonalWeapon, i.FullMagazine,
		i.ValidCommunication, i.EntranceGateOperational, i.ScanLogComplete, i.ProceduresBooklet,
		i.EntranceProcedures, i.SecurityOfficerKnowledge,
	}
}
