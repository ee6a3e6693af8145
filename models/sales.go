package models

import (
	"time"
)

type Sales struct {
	ID         uint  `gorm:"primaryKey"`
	PaymentID  uint  `gorm:"index"`
	EmployeeID uint
	AdminID    uint
	ServiceID  *uint `gorm:"index"`
	// ServiceName is denormalized so the sale survives service edits.
	ServiceName string    `gorm:"not null"`
	Date        time.Time `gorm:"type:date"`
	ReceiptID   *uint     `gorm:"index"`

	CreatedAt time.Time
}
