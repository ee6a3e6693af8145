package models

import (
	"time"
)

// Admin is a fixed record type mirroring Customer's shape. Admin and
// customer sessions are independent namespaces; a valid customer session
// never grants admin access.
type Admin struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Mobile    string `gorm:"uniqueIndex;not null"`
	Role      string `gorm:"type:varchar(50)"`
	Password  string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Admin) FullName() string {
	return a.FirstName + " " + a.LastName
}
