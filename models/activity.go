package models

import (
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null"`
	DurationMinutes float64   // minutes walked
	CaloriesBurned  float64
	Date            time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
}
