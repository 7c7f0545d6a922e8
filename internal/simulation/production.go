package simulation

import (
	"errors"
	"math"

	"fabrika-backend/internal/catalog"
	"fabrika-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// runProduction: Reçete atanmış her atölye için bir üretim denemesi yapar,
// sonra boştaki atölyelere bekleyen siparişlerin reçetelerini eşler.
func runProduction(tx *gorm.DB, state *models.SimulationState) error {
	var workshops []models.Workshop
	if err := tx.Where("recipe_id IS NOT NULL").Order("id ASC").Find(&workshops).Error; err != nil {
		return err
	}

	for i := range workshops {
		if err := runWorkshop(tx, state, &workshops[i]); err != nil {
			return err
		}
	}

	return reassignWorkshops(tx)
}

// runWorkshop: Tek atölyenin günlük üretim denemesi. Parti sayısı
// q = floor(günlük kütle kapasitesi / bitmiş ürün kütlesi). Her malzeme
// için gereksinim q ile çarpılır; tüm gereksinimler karşılanırsa q adetlik
// yeni bir parti oluşur. Deneme sonunda atama her durumda temizlenir:
// bir atama bir üretim denemesidir.
func runWorkshop(tx *gorm.DB, state *models.SimulationState, ws *models.Workshop) error {
	var recipe models.Recipe
	err := tx.Preload("FinishProduct").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&recipe, *ws.RecipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Reçete tikler arasında silinmiş, atamayı temizleyip geç.
		return clearAssignment(tx, ws)
	}
	if err != nil {
		return err
	}

	if recipe.FinishProduct.Mass <= 0 {
		// Parti sayısı hesaplanamaz, bu tik üretim yok.
		return clearAssignment(tx, ws)
	}

	q := int(math.Floor(ws.MaxThroughput / recipe.FinishProduct.Mass))
	endOfWork := true

	for _, ing := range recipe.Ingredients {
		need := ing.Quantity * q

		have, err := lotTotal(tx, ing.ProductID)
		if err != nil {
			return err
		}

		price, err := catalog.Cheapest(tx, ing.ProductID)
		if err != nil {
			return err
		}

		// Stok yetersizse VEYA malzemeyi satan herhangi bir tedarikçi
		// varsa satın alma yolu işler; stoktan tüketim yalnızca stok
		// yeterli ve kataloğda tedarikçi yokken yapılır.
		if have < need || price != nil {
			if price == nil {
				// Satan tedarikçi yok: gereksinim bu tik karşılanamadı,
				// partilere dokunulmaz.
				endOfWork = false
				continue
			}
			// Alış fişi kes, bakiyeden düş, malzemenin TÜM partilerini sil.
			// Fiş satırına q-have, bakiye düşümüne need-have yazılır.
			if err := writePurchase(tx, state, price, q-have, need-have); err != nil {
				return err
			}
			if err := clearLots(tx, ing.ProductID); err != nil {
				return err
			}
		} else {
			if err := consumeLots(tx, ing.ProductID, need); err != nil {
				return err
			}
		}
	}

	if endOfWork {
		lot := models.StockLot{
			ProductID:      recipe.FinishProductID,
			Quantity:       q,
			ProductionDate: state.CurrentDate,
		}
		if err := tx.Create(&lot).Error; err != nil {
			return err
		}
	}

	return clearAssignment(tx, ws)
}

func clearAssignment(tx *gorm.DB, ws *models.Workshop) error {
	ws.RecipeID = nil
	ws.Recipe = nil
	return tx.Model(&models.Workshop{}).Where("id = ?", ws.ID).Update("recipe_id", nil).Error
}

// writePurchase: Tedarikçi tarafı fiş keser ve bakiyeden
// debitQty * birim fiyat düşer. Fiş satırının Price alanı birim fiyattır.
func writePurchase(tx *gorm.DB, state *models.SimulationState, sp *models.SupplierPrice, itemQty, debitQty int) error {
	receipt := models.Receipt{
		Date:       state.CurrentDate,
		SupplierID: &sp.SupplierID,
		Items: []models.ReceiptItem{{
			ProductID: sp.ProductID,
			Price:     sp.Price,
			Quantity:  itemQty,
		}},
	}
	if err := tx.Create(&receipt).Error; err != nil {
		return err
	}

	state.Balance = state.Balance.Sub(sp.Price.Mul(decimal.NewFromInt(int64(debitQty))))
	return nil
}

// reassignWorkshops: Reçetesi olan ürünlere ait bekleyen siparişler, boşta
// kalan atölyelere birebir eşlenir. Eşleme sırası: sipariş ID artan x
// atölye ID artan; listelerden biri bitince durur. Ürünün birden fazla
// reçetesi varsa en düşük ID'li reçete atanır.
func reassignWorkshops(tx *gorm.DB) error {
	var orders []models.Order
	if err := tx.Order("id ASC").Find(&orders).Error; err != nil {
		return err
	}

	var idle []models.Workshop
	if err := tx.Where("recipe_id IS NULL").Order("id ASC").Find(&idle).Error; err != nil {
		return err
	}

	wi := 0
	for _, order := range orders {
		if wi >= len(idle) {
			break
		}

		var recipe models.Recipe
		err := tx.Where("finish_product_id = ?", order.ProductID).
			Order("id ASC").
			First(&recipe).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue // ürünün reçetesi yok, atölye harcanmaz
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Workshop{}).
			Where("id = ?", idle[wi].ID).
			Update("recipe_id", recipe.ID).Error; err != nil {
			return err
		}
		wi++
	}
	return nil
}
