package models

import (
	"time"
)

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Mobile    string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Address   string `gorm:"type:text"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID"`
	Receipts     []Receipt     `gorm:"foreignKey:CustomerID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name for display.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
