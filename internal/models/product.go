package models

import "time"

type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;unique"`
	WarehouseID uint   `gorm:"index;not null"`
	Warehouse   Warehouse
	ExpiryDays  int     `gorm:"not null"` // raf ömrü (gün)
	Mass        float64 `gorm:"not null"` // birim kütle (kg), negatif olamaz
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
