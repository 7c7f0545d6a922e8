package inventory

import (
	"testing"
	"time"

	"fabrika-backend/internal/models"
	"fabrika-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intakeFixture(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()

	warehouse := models.Warehouse{Category: "kuru", MaxCapacity: 1000}
	require.NoError(t, db.Create(&warehouse).Error)

	product := models.Product{Name: "Un", WarehouseID: warehouse.ID, ExpiryDays: 30, Mass: 1}
	require.NoError(t, db.Create(&product).Error)

	return &product
}

func TestIntakeStockRejectedWithoutSupplier(t *testing.T) {
	db := testutil.NewDB(t)
	product := intakeFixture(t, db)

	state := models.SimulationState{
		CurrentDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Balance:     decimal.Zero,
	}
	require.NoError(t, db.Create(&state).Error)

	lot, err := IntakeStock(db, product.ID, 10, state.CurrentDate)
	require.ErrorIs(t, err, ErrNoSupplier)
	assert.Nil(t, lot)

	// Giriş tamamen reddedilir: parti yok, fiş yok, bakiye aynı.
	var lots, receipts int64
	require.NoError(t, db.Model(&models.StockLot{}).Count(&lots).Error)
	require.NoError(t, db.Model(&models.Receipt{}).Count(&receipts).Error)
	assert.Equal(t, int64(0), lots)
	assert.Equal(t, int64(0), receipts)

	var got models.SimulationState
	require.NoError(t, db.First(&got).Error)
	assert.True(t, got.Balance.IsZero())
}

func TestIntakeStockRejectedWithoutState(t *testing.T) {
	db := testutil.NewDB(t)
	product := intakeFixture(t, db)

	supplier := models.Supplier{Name: "Değirmen"}
	require.NoError(t, db.Create(&supplier).Error)
	require.NoError(t, db.Create(&models.SupplierPrice{
		SupplierID: supplier.ID,
		ProductID:  product.ID,
		Price:      decimal.RequireFromString("3.00"),
	}).Error)

	_, err := IntakeStock(db, product.ID, 10, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrNoState)
}

func TestIntakeStockBuysFromCheapestSupplier(t *testing.T) {
	db := testutil.NewDB(t)
	product := intakeFixture(t, db)

	for name, price := range map[string]string{"Pahalı": "5.00", "Ucuz": "3.00"} {
		supplier := models.Supplier{Name: name}
		require.NoError(t, db.Create(&supplier).Error)
		require.NoError(t, db.Create(&models.SupplierPrice{
			SupplierID: supplier.ID,
			ProductID:  product.ID,
			Price:      decimal.RequireFromString(price),
		}).Error)
	}

	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	state := models.SimulationState{CurrentDate: day, Balance: decimal.Zero}
	require.NoError(t, db.Create(&state).Error)

	lot, err := IntakeStock(db, product.ID, 10, day)
	require.NoError(t, err)
	require.NotNil(t, lot)
	assert.Equal(t, 10, lot.Quantity)
	assert.True(t, lot.ProductionDate.Equal(day))

	var receipt models.Receipt
	require.NoError(t, db.Preload("Items").Preload("Supplier").First(&receipt).Error)
	require.NotNil(t, receipt.SupplierID)
	assert.Equal(t, "Ucuz", receipt.Supplier.Name)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "3.00", receipt.Items[0].Price.StringFixed(2))
	assert.Equal(t, 10, receipt.Items[0].Quantity)

	var got models.SimulationState
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "-30.00", got.Balance.StringFixed(2))
}
