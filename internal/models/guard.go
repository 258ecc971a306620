package models

import "time"

// Guard is the aggregate root; inspections and exercises cannot outlive it
type Guard struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	FirstName string    `gorm:"size:255;not null" json:"firstName"`
	LastName  string    `gorm:"size:255;not null" json:"lastName"`
	IDNumber  string    `gorm:"size:16;not null" json:"idNumber"`
	Phone     string    `gorm:"size:32;not null" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// TableName overrides the table name for Guard
func (Guard) TableName() string {
	return "guards"
}

// FullName joins first and last name for display
func (g Guard) FullName() string {
	return g.FirstName + " " + g.LastName
}
