package models

import (
	"github.com/shopspring/decimal"
)

type Service struct {
	ID            uint                `gorm:"primaryKey"`
	Name          string              `gorm:"not null"`
	Category      string              `gorm:"not null;default:'General'"`
	Description   string              `gorm:"type:text"`
	Price         decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	OriginalPrice decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	DiscountLabel string              `gorm:"type:varchar(50)"`
	IsActive      bool                `gorm:"default:true"`
}
