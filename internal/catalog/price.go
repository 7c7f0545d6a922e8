package catalog

import (
	"errors"

	"fabrika-backend/internal/models"

	"gorm.io/gorm"
)

// Cheapest: Ürünü satan en ucuz tedarikçi fiyatını döner. Aynı fiyatı veren
// birden fazla tedarikçi varsa en düşük ID'li satır seçilir. Ürünü satan
// tedarikçi yoksa (nil, nil) döner.
func Cheapest(db *gorm.DB, productID uint) (*models.SupplierPrice, error) {
	var sp models.SupplierPrice
	err := db.Where("product_id = ?", productID).
		Order("price ASC, id ASC").
		First(&sp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}
