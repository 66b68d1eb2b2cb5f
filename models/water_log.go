package models

import (
	"time"

	"gorm.io/gorm"
)

type WaterLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	AmountML float64
	Date     time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
}
