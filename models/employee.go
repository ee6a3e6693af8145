package models

import (
	"time"
)

type Employee struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Phone        string
	Address      string  `gorm:"type:text"`
	Skills       string  `gorm:"type:text"`
	Rating       float64 `gorm:"type:decimal(3,1);default:0.0"`
	Availability string  `gorm:"type:varchar(20);default:'available'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
