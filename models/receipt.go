package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID            uint `gorm:"primaryKey"`
	CustomerID    uint `gorm:"index;not null"`
	AppointmentID uint `gorm:"index"`
	SalesID       uint `gorm:"index"`

	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ReceiptDate time.Time       `gorm:"type:date"`
	// ReceiptNumber is the sequential RCP### identifier. The unique index
	// turns a lost race between concurrent checkouts into a constraint
	// violation that the checkout retries.
	ReceiptNumber string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
}
