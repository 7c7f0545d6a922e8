package simulation

import (
	"fmt"

	"fabrika-backend/internal/catalog"
	"fabrika-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// runDebiting: Üç geçiş: sıfır miktarlı partiler temizlenir, süresi dolan
// partiler düşülür, sonra depo taşmaları kalmayana kadar taşma geçişi
// tekrarlanır.
func runDebiting(tx *gorm.DB, state *models.SimulationState) error {
	if err := cleanupZeroLots(tx); err != nil {
		return err
	}
	if err := evictExpired(tx, state); err != nil {
		return err
	}
	return evictOverflow(tx, state)
}

func cleanupZeroLots(tx *gorm.DB) error {
	return tx.Where("quantity = 0").Delete(&models.StockLot{}).Error
}

// evictExpired: Üretim tarihi + raf ömrü güncel tarihin gerisinde kalan
// her parti düşülür.
func evictExpired(tx *gorm.DB, state *models.SimulationState) error {
	var lots []models.StockLot
	if err := tx.Preload("Product").Order("id ASC").Find(&lots).Error; err != nil {
		return err
	}

	for i := range lots {
		expiry := lots[i].ProductionDate.AddDate(0, 0, lots[i].Product.ExpiryDays)
		if !expiry.Before(state.CurrentDate) {
			continue
		}
		if err := evictLot(tx, state, &lots[i], false); err != nil {
			return err
		}
	}
	return nil
}

// evictOverflow: Kapasitesi aşılan depodan bir parti komple düşülür ve
// geçiş baştan başlar; silme birikimli toplamları geçersiz kılar. Her
// başarılı düşme toplam stok adedini kesin azaltmalıdır; azalmadıysa
// döngü hata ile kesilir.
func evictOverflow(tx *gorm.DB, state *models.SimulationState) error {
	for {
		before, err := totalStock(tx)
		if err != nil {
			return err
		}

		evicted, err := overflowPass(tx, state)
		if err != nil {
			return err
		}
		if !evicted {
			return nil
		}

		after, err := totalStock(tx)
		if err != nil {
			return err
		}
		if after >= before {
			return fmt.Errorf("taşma düşümü toplam stoğu azaltmadı (%d -> %d)", before, after)
		}
	}
}

// overflowPass: Depoları ID sırasıyla tarar. Bir deponun partileri ID
// sırasıyla kapasiteden düşülür; kalan kapasiteyi sıfırın altına indiren
// ilk parti tamamı ile (taşan kısmı kadar değil) düşülür ve geçiş biter.
func overflowPass(tx *gorm.DB, state *models.SimulationState) (bool, error) {
	var warehouses []models.Warehouse
	if err := tx.Order("id ASC").Find(&warehouses).Error; err != nil {
		return false, err
	}

	for _, w := range warehouses {
		var lots []models.StockLot
		if err := tx.Joins("JOIN products ON products.id = stock_lots.product_id").
			Where("products.warehouse_id = ?", w.ID).
			Order("stock_lots.id ASC").
			Find(&lots).Error; err != nil {
			return false, err
		}

		remaining := w.MaxCapacity
		for i := range lots {
			remaining -= lots[i].Quantity
			if remaining < 0 {
				if err := evictLot(tx, state, &lots[i], true); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}
	return false, nil
}

// evictLot: Parti için düşme kaydı yazar, ürünü satan tedarikçi varsa en
// ucuz fiyattan bakiyeye alacak geçer ve partiyi siler. Fresh=false süre
// dolumu, Fresh=true kapasite taşması demektir.
func evictLot(tx *gorm.DB, state *models.SimulationState, lot *models.StockLot, fresh bool) error {
	entry := models.WasteEntry{
		ProductID: lot.ProductID,
		Quantity:  lot.Quantity,
		Date:      state.CurrentDate,
		Fresh:     fresh,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	price, err := catalog.Cheapest(tx, lot.ProductID)
	if err != nil {
		return err
	}
	if price != nil {
		state.Balance = state.Balance.Add(price.Price.Mul(decimal.NewFromInt(int64(lot.Quantity))))
	}

	return tx.Delete(&models.StockLot{}, lot.ID).Error
}
