package models

import "time"

// StockLot: Depodaki bir stok partisi. Aynı ürün için birden fazla parti
// olabilir, otomatik birleştirme yok. Miktar 0'a düşünce, süresi dolunca
// veya kapasite taşmasında parti silinir.
type StockLot struct {
	ID             uint `gorm:"primaryKey"`
	ProductID      uint `gorm:"index;not null"`
	Product        Product
	Quantity       int       `gorm:"not null"`       // adet, >= 0
	ProductionDate time.Time `gorm:"index;not null"` // üretim / giriş tarihi
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
