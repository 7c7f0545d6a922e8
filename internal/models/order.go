package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order: Müşteri siparişi. Kısmi karşılamada Quantity azaltılır, tam
// karşılamada kayıt silinir.
type Order struct {
	ID         uint  `gorm:"primaryKey"`
	CustomerID *uint `gorm:"index"`
	Customer   *Customer
	ProductID  uint `gorm:"index;not null"`
	Product    Product
	Quantity   int             `gorm:"not null"`                    // kalan adet
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"` // birim satış fiyatı
	OrderDate  time.Time       `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
