package models

import "time"

// Warehouse: Depo. Kapasite, depoya bağlı tüm ürünlerin tüm partileri
// üzerinden toplam adet olarak uygulanır.
type Warehouse struct {
	ID          uint   `gorm:"primaryKey"`
	Category    string `gorm:"size:32;not null"` // soğuk, kuru vs.
	MaxCapacity int    `gorm:"not null"`         // toplam adet kapasitesi
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []Product
}
