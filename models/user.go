package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	// Profile fields, filled in at onboarding.
	Sex    string `gorm:"size:10"`
	Weight float64 // kg
	Height float64 // meters
	Age    int
	Goal   string `gorm:"size:50"`

	// Display preferences.
	Theme       string `gorm:"size:20;not null;default:light"`
	FontSize    string `gorm:"size:20;not null;default:medium"`
	AccentColor string `gorm:"size:20;not null;default:#007bff"`
}

// Onboarded reports whether the profile step has been completed.
func (u *User) Onboarded() bool {
	return u.Weight > 0 && u.Height > 0 && u.Age > 0
}
