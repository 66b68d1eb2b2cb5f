package models

import "gorm.io/gorm"

// A catalog entry: calories per gram for one food name.
// Rows come from the CSV catalog at startup, or lazily the first
// time a user logs a food the catalog does not know.
type Food struct {
	gorm.Model
	Name            string `gorm:"size:100;uniqueIndex;not null"`
	CaloriesPerGram float64
}
