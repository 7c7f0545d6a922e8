package models

import "time"

// Workshop: Atölye. RecipeID null ise atölye boşta; her gün tiki bir
// üretim denemesi yapar ve reçete ataması temizlenir.
type Workshop struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:100;not null"`
	MaxThroughput float64 `gorm:"not null"` // günlük azami kütle (kg/gün)
	RecipeID      *uint   `gorm:"index"`
	Recipe        *Recipe
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
