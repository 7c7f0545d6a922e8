package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt: Alış/satış fişi. Tam olarak bir taraf dolu olur: müşteri (satış)
// veya tedarikçi (alış). Oluşturulduktan sonra değiştirilmez.
type Receipt struct {
	ID         uint      `gorm:"primaryKey"`
	Date       time.Time `gorm:"index;not null"`
	CustomerID *uint     `gorm:"index"`
	Customer   *Customer
	SupplierID *uint `gorm:"index"`
	Supplier   *Supplier
	CreatedAt  time.Time

	Items []ReceiptItem `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
}

// ReceiptItem: Fiş satırı. Price alanı alış satırında birim fiyatı, satış
// satırında satır toplamını tutar.
type ReceiptItem struct {
	ID        uint `gorm:"primaryKey"`
	ReceiptID uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	Price     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity  int             `gorm:"not null"`
	CreatedAt time.Time
}
