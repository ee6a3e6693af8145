package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID uint `gorm:"primaryKey"`
	// AppointmentID stays nil until the appointment row exists; it is
	// linked by an update inside the checkout transaction.
	AppointmentID *uint `gorm:"index"`

	Method         string          `gorm:"type:varchar(50);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date           time.Time       `gorm:"type:date"`
	Status         string          `gorm:"type:varchar(20);default:'pending'"`
	TransactionRef string          `gorm:"type:varchar(36)"`

	CreatedAt time.Time
}
