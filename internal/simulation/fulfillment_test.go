package simulation

import (
	"errors"
	"testing"
	"time"

	"fabrika-backend/internal/models"
	"fabrika-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFulfillOrderNoStockWaits(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.April, 1)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	order := seedOrder(t, db, bread.ID, 10, "4.00", day)

	require.NoError(t, fulfillOrder(db, state, order))

	// Boş fiş kesilmez, sipariş olduğu gibi bekler.
	assert.Equal(t, int64(0), receiptCount(t, db))
	assert.True(t, state.Balance.IsZero())

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, 10, got.Quantity)
}

func TestFulfillOrderPartialSale(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.April, 1)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, bread.ID, 4, day)
	seedLot(t, db, bread.ID, 3, day)
	order := seedOrder(t, db, bread.ID, 10, "4.00", day)

	require.NoError(t, fulfillOrder(db, state, order))

	// Eldeki 7 adedin tamamı satılır, tüm partiler silinir ve sipariş
	// kalan 3 adetle bekler.
	assert.Empty(t, lotQuantities(t, db, bread.ID))
	assert.Equal(t, "28.00", state.Balance.StringFixed(2))

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, 3, got.Quantity)

	var receipt models.Receipt
	require.NoError(t, db.Preload("Items").First(&receipt).Error)
	require.NotNil(t, receipt.CustomerID)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 7, receipt.Items[0].Quantity)
	// Satış satırında Price satır toplamıdır.
	assert.Equal(t, "28.00", receipt.Items[0].Price.StringFixed(2))
}

func TestFulfillOrderFullConsumesLotsInOrder(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.April, 1)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, bread.ID, 4, day)
	seedLot(t, db, bread.ID, 6, day)
	order := seedOrder(t, db, bread.ID, 7, "4.00", day)

	require.NoError(t, fulfillOrder(db, state, order))

	// İlk parti silinir, ikinciden 3 adet düşülür, sipariş kapanır.
	assert.Equal(t, []int{3}, lotQuantities(t, db, bread.ID))
	assert.Equal(t, "28.00", state.Balance.StringFixed(2))

	err := db.First(&models.Order{}, order.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRunFulfillmentHandlesOrdersIndependently(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.April, 1)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, bread.ID, 5, day)

	first := seedOrder(t, db, bread.ID, 5, "4.00", day)
	second := seedOrder(t, db, bread.ID, 5, "4.00", day)

	require.NoError(t, runFulfillment(db, state))

	// İlk sipariş stoğu bitirir, ikincisi aynı tikte eli boş bekler.
	assert.Empty(t, lotQuantities(t, db, bread.ID))
	assert.Equal(t, "20.00", state.Balance.StringFixed(2))

	err := db.First(&models.Order{}, first.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var got models.Order
	require.NoError(t, db.First(&got, second.ID).Error)
	assert.Equal(t, 5, got.Quantity)
}
