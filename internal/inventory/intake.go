package inventory

import (
	"errors"
	"time"

	"fabrika-backend/internal/catalog"
	"fabrika-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNoSupplier = errors.New("ürünü satan tedarikçi yok")
	ErrNoState    = errors.New("simülasyon başlatılmamış")
)

// IntakeStock: Günlük tik dışındaki manuel stok girişi. Ürünü satan bir
// tedarikçi yoksa giriş tamamen reddedilir: parti de fiş de oluşmaz,
// bakiye değişmez. Başarıda en ucuz tedarikçiden alış fişi kesilir,
// bakiyeden miktar * birim fiyat düşülür ve yeni parti açılır.
func IntakeStock(db *gorm.DB, productID uint, quantity int, date time.Time) (*models.StockLot, error) {
	var lot models.StockLot

	err := db.Transaction(func(tx *gorm.DB) error {
		price, err := catalog.Cheapest(tx, productID)
		if err != nil {
			return err
		}
		if price == nil {
			return ErrNoSupplier
		}

		var state models.SimulationState
		if err := tx.First(&state).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoState
			}
			return err
		}

		receipt := models.Receipt{
			Date:       date,
			SupplierID: &price.SupplierID,
			Items: []models.ReceiptItem{{
				ProductID: productID,
				Price:     price.Price,
				Quantity:  quantity,
			}},
		}
		if err := tx.Create(&receipt).Error; err != nil {
			return err
		}

		state.Balance = state.Balance.Sub(price.Price.Mul(decimal.NewFromInt(int64(quantity))))
		if err := tx.Save(&state).Error; err != nil {
			return err
		}

		lot = models.StockLot{
			ProductID:      productID,
			Quantity:       quantity,
			ProductionDate: date,
		}
		return tx.Create(&lot).Error
	})
	if err != nil {
		return nil, err
	}
	return &lot, nil
}
