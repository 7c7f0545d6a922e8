package models

import "time"

// WasteEntry: Stoktan düşme kaydı. Fresh=false ise ürün son kullanma
// tarihi geçtiği için, Fresh=true ise depo kapasite taşması yüzünden
// düşülmüştür.
type WasteEntry struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	Quantity  int       `gorm:"not null"`
	Date      time.Time `gorm:"index;not null"` // düşme tarihi
	Fresh     bool      `gorm:"not null"`
	CreatedAt time.Time
}
