package simulation

import (
	"testing"
	"time"

	"fabrika-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedState(t *testing.T, db *gorm.DB, day time.Time) *models.SimulationState {
	t.Helper()
	state := &models.SimulationState{CurrentDate: day, Balance: decimal.Zero}
	if err := db.Create(state).Error; err != nil {
		t.Fatalf("durum oluşturulamadı: %v", err)
	}
	return state
}

func seedWarehouse(t *testing.T, db *gorm.DB, capacity int) *models.Warehouse {
	t.Helper()
	w := &models.Warehouse{Category: "kuru", MaxCapacity: capacity}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("depo oluşturulamadı: %v", err)
	}
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, name string, warehouseID uint, expiryDays int, mass float64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, WarehouseID: warehouseID, ExpiryDays: expiryDays, Mass: mass}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("ürün oluşturulamadı: %v", err)
	}
	return p
}

func seedLot(t *testing.T, db *gorm.DB, productID uint, qty int, produced time.Time) *models.StockLot {
	t.Helper()
	lot := &models.StockLot{ProductID: productID, Quantity: qty, ProductionDate: produced}
	if err := db.Create(lot).Error; err != nil {
		t.Fatalf("parti oluşturulamadı: %v", err)
	}
	return lot
}

func seedSupplierPrice(t *testing.T, db *gorm.DB, productID uint, price string) *models.SupplierPrice {
	t.Helper()
	s := &models.Supplier{Name: "Tedarikçi-" + time.Now().Format("150405.000000000")}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("tedarikçi oluşturulamadı: %v", err)
	}
	sp := &models.SupplierPrice{
		SupplierID: s.ID,
		ProductID:  productID,
		Price:      decimal.RequireFromString(price),
	}
	if err := db.Create(sp).Error; err != nil {
		t.Fatalf("tedarikçi fiyatı oluşturulamadı: %v", err)
	}
	return sp
}

type ingredientSpec struct {
	productID uint
	quantity  int
}

func seedRecipe(t *testing.T, db *gorm.DB, name string, finishProductID uint, ingredients []ingredientSpec) *models.Recipe {
	t.Helper()
	r := &models.Recipe{Name: name, FinishProductID: finishProductID}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("reçete oluşturulamadı: %v", err)
	}
	for _, item := range ingredients {
		ing := &models.RecipeIngredient{RecipeID: r.ID, ProductID: item.productID, Quantity: item.quantity}
		if err := db.Create(ing).Error; err != nil {
			t.Fatalf("reçete malzemesi oluşturulamadı: %v", err)
		}
	}
	return r
}

func seedWorkshop(t *testing.T, db *gorm.DB, throughput float64, recipeID *uint) *models.Workshop {
	t.Helper()
	w := &models.Workshop{Name: "Atölye", MaxThroughput: throughput, RecipeID: recipeID}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("atölye oluşturulamadı: %v", err)
	}
	return w
}

func seedOrder(t *testing.T, db *gorm.DB, productID uint, qty int, unitPrice string, day time.Time) *models.Order {
	t.Helper()
	c := &models.Customer{Name: "Müşteri"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("müşteri oluşturulamadı: %v", err)
	}
	o := &models.Order{
		CustomerID: &c.ID,
		ProductID:  productID,
		Quantity:   qty,
		UnitPrice:  decimal.RequireFromString(unitPrice),
		OrderDate:  day,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("sipariş oluşturulamadı: %v", err)
	}
	return o
}

func lotQuantities(t *testing.T, db *gorm.DB, productID uint) []int {
	t.Helper()
	var lots []models.StockLot
	if err := db.Where("product_id = ?", productID).Order("id ASC").Find(&lots).Error; err != nil {
		t.Fatalf("partiler okunamadı: %v", err)
	}
	out := make([]int, 0, len(lots))
	for _, l := range lots {
		out = append(out, l.Quantity)
	}
	return out
}

func receiptCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Receipt{}).Count(&n).Error; err != nil {
		t.Fatalf("fişler sayılamadı: %v", err)
	}
	return n
}
