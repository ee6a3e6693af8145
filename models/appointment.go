package models

import (
	"time"
)

// Appointment statuses. Only confirmed and scheduled appointments occupy
// a booking slot.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"index;not null"`
	EmployeeID uint `gorm:"index"`
	PaymentID  uint `gorm:"index"`
	SalesID    uint `gorm:"index"`

	Date time.Time `gorm:"type:date;not null"`
	// Time of day in 24-hour "15:04:05" form; formatted to a 12-hour
	// label at the edges.
	Time   string `gorm:"type:varchar(8);not null"`
	Status string `gorm:"type:varchar(20);default:'scheduled'"`

	// ReceiptCode holds the human-facing receipt number (RCP###). It is
	// only known after the receipt row is inserted, so it is filled in by
	// a second update inside the checkout transaction.
	ReceiptCode string `gorm:"type:varchar(20)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
