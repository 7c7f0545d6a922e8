package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierPrice: Tedarikçinin bir ürün için birim satış fiyatı.
// (tedarikçi, ürün) çifti tekil.
type SupplierPrice struct {
	ID         uint `gorm:"primaryKey"`
	SupplierID uint `gorm:"index;not null;uniqueIndex:uniq_supplier_product"`
	Supplier   Supplier
	ProductID  uint `gorm:"index;not null;uniqueIndex:uniq_supplier_product"`
	Product    Product
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"` // birim fiyat
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
