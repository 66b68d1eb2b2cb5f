package models

import (
	"time"

	"gorm.io/gorm"
)

type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Name     string    `gorm:"size:100"`
	Calories float64
	Grams    float64
	Date     time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
}
