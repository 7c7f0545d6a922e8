package simulation

import (
	"fabrika-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// runFulfillment: Her siparişi bağımsız değerlendirir. Stok siparişi
// karşılamıyorsa eldeki kadarı satılır ve sipariş kalan miktarla bekler;
// yeterliyse sipariş tamamen karşılanıp silinir.
func runFulfillment(tx *gorm.DB, state *models.SimulationState) error {
	var orders []models.Order
	if err := tx.Order("id ASC").Find(&orders).Error; err != nil {
		return err
	}

	for i := range orders {
		if err := fulfillOrder(tx, state, &orders[i]); err != nil {
			return err
		}
	}
	return nil
}

func fulfillOrder(tx *gorm.DB, state *models.SimulationState, order *models.Order) error {
	available, err := lotTotal(tx, order.ProductID)
	if err != nil {
		return err
	}

	if available < order.Quantity {
		if available == 0 {
			// Hiç stok yok: boş fiş kesilmez, sipariş olduğu gibi bekler.
			return nil
		}
		// Kısmi satış: eldeki tamamı satılır, ürünün tüm partileri
		// silinir, sipariş kalan miktarla devam eder.
		total := order.UnitPrice.Mul(decimal.NewFromInt(int64(available)))
		if err := writeSale(tx, state, order, available, total); err != nil {
			return err
		}
		if err := clearLots(tx, order.ProductID); err != nil {
			return err
		}
		order.Quantity -= available
		return tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("quantity", order.Quantity).Error
	}

	// Tam karşılama: partilerden sipariş miktarı tüketilir, sipariş silinir.
	total := order.UnitPrice.Mul(decimal.NewFromInt(int64(order.Quantity)))
	if err := writeSale(tx, state, order, order.Quantity, total); err != nil {
		return err
	}
	if err := consumeLots(tx, order.ProductID, order.Quantity); err != nil {
		return err
	}
	return tx.Delete(&models.Order{}, order.ID).Error
}

// writeSale: Müşteri tarafı fiş keser ve satır toplamını bakiyeye ekler.
// Fiş satırının Price alanı satır toplamıdır.
func writeSale(tx *gorm.DB, state *models.SimulationState, order *models.Order, qty int, total decimal.Decimal) error {
	receipt := models.Receipt{
		Date:       state.CurrentDate,
		CustomerID: order.CustomerID,
		Items: []models.ReceiptItem{{
			ProductID: order.ProductID,
			Price:     total,
			Quantity:  qty,
		}},
	}
	if err := tx.Create(&receipt).Error; err != nil {
		return err
	}

	state.Balance = state.Balance.Add(total)
	return nil
}
