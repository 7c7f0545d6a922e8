package simulation

import (
	"fabrika-backend/internal/models"

	"gorm.io/gorm"
)

// lotTotal: Ürünün tüm partilerindeki toplam adet.
func lotTotal(tx *gorm.DB, productID uint) (int, error) {
	var total int64
	err := tx.Model(&models.StockLot{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return int(total), err
}

// consumeLots: Ürünün partilerinden toplam need adet düşer. Partiler ID
// sırasıyla (giriş sırası) tüketilir: kalanı karşılayan parti azaltılır,
// yetmeyen parti silinip kalan bir sonrakine devredilir.
func consumeLots(tx *gorm.DB, productID uint, need int) error {
	if need <= 0 {
		return nil
	}

	var lots []models.StockLot
	if err := tx.Where("product_id = ?", productID).Order("id ASC").Find(&lots).Error; err != nil {
		return err
	}

	remaining := need
	for i := range lots {
		if remaining <= 0 {
			break
		}
		if lots[i].Quantity > remaining {
			lots[i].Quantity -= remaining
			if err := tx.Save(&lots[i]).Error; err != nil {
				return err
			}
			remaining = 0
		} else {
			remaining -= lots[i].Quantity
			if err := tx.Delete(&models.StockLot{}, lots[i].ID).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// clearLots: Ürünün tüm partilerini siler.
func clearLots(tx *gorm.DB, productID uint) error {
	return tx.Where("product_id = ?", productID).Delete(&models.StockLot{}).Error
}

// totalStock: Sistemdeki tüm partilerin toplam adedi.
func totalStock(tx *gorm.DB) (int, error) {
	var total int64
	err := tx.Model(&models.StockLot{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return int(total), err
}
