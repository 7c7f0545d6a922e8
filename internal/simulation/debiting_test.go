package simulation

import (
	"testing"
	"time"

	"fabrika-backend/internal/models"
	"fabrika-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupZeroLots(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.May, 1)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, bread.ID, 0, day)
	seedLot(t, db, bread.ID, 3, day)
	seedLot(t, db, bread.ID, 0, day)

	require.NoError(t, cleanupZeroLots(db))
	assert.Equal(t, []int{3}, lotQuantities(t, db, bread.ID))

	// İkinci koşu bir şey değiştirmez.
	require.NoError(t, cleanupZeroLots(db))
	assert.Equal(t, []int{3}, lotQuantities(t, db, bread.ID))
}

func TestEvictExpiredCreditsCheapestPrice(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.May, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedSupplierPrice(t, db, bread.ID, "4.00")
	seedSupplierPrice(t, db, bread.ID, "2.50")

	// 4 Mayıs + 5 gün = 9 Mayıs < 10 Mayıs: süresi dolmuş.
	expired := seedLot(t, db, bread.ID, 6, date(2025, time.May, 4))
	fresh := seedLot(t, db, bread.ID, 8, date(2025, time.May, 5))
	_ = expired

	require.NoError(t, evictExpired(db, state))

	assert.Equal(t, []int{8}, lotQuantities(t, db, bread.ID))
	// En ucuz fiyattan alacak: 6 x 2.50.
	assert.Equal(t, "15.00", state.Balance.StringFixed(2))

	var entry models.WasteEntry
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, bread.ID, entry.ProductID)
	assert.Equal(t, 6, entry.Quantity)
	assert.False(t, entry.Fresh)

	var remaining models.StockLot
	require.NoError(t, db.First(&remaining, fresh.ID).Error)
	assert.Equal(t, 8, remaining.Quantity)
}

func TestEvictExpiredNoSupplierNoCredit(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.May, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 2, 2)
	seedLot(t, db, bread.ID, 6, date(2025, time.May, 1))

	require.NoError(t, evictExpired(db, state))

	assert.Empty(t, lotQuantities(t, db, bread.ID))
	assert.True(t, state.Balance.IsZero())

	var count int64
	require.NoError(t, db.Model(&models.WasteEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEvictOverflowRemovesWholeLots(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.May, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 10)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 30, 2)
	first := seedLot(t, db, bread.ID, 6, day)
	seedLot(t, db, bread.ID, 6, day)
	seedLot(t, db, bread.ID, 3, day)

	require.NoError(t, evictOverflow(db, state))

	// Kapasiteyi aşan ilk parti (ikinci, 6 adet) komple düşülür; kalan
	// 6+3=9 kapasitenin altında kaldığından geçiş biter.
	assert.Equal(t, []int{6, 3}, lotQuantities(t, db, bread.ID))

	var entries []models.WasteEntry
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, 6, entries[0].Quantity)
	assert.True(t, entries[0].Fresh)

	var kept models.StockLot
	require.NoError(t, db.First(&kept, first.ID).Error)
	assert.Equal(t, 6, kept.Quantity)
}

func TestEvictOverflowRepeatsUntilUnderCapacity(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.May, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 5)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 30, 2)
	seedLot(t, db, bread.ID, 4, day)
	seedLot(t, db, bread.ID, 4, day)
	seedLot(t, db, bread.ID, 4, day)

	require.NoError(t, evictOverflow(db, state))

	// İki geçiş gerekir: önce ikinci, sonra (eski) üçüncü parti düşülür.
	assert.Equal(t, []int{4}, lotQuantities(t, db, bread.ID))

	var count int64
	require.NoError(t, db.Model(&models.WasteEntry{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestEvictOverflowIgnoresOtherWarehouses(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.May, 10)
	state := seedState(t, db, day)

	tight := seedWarehouse(t, db, 5)
	roomy := seedWarehouse(t, db, 100)
	bread := seedProduct(t, db, "Ekmek", tight.ID, 30, 2)
	cake := seedProduct(t, db, "Kek", roomy.ID, 30, 1)
	seedLot(t, db, bread.ID, 8, day)
	seedLot(t, db, cake.ID, 50, day)

	require.NoError(t, evictOverflow(db, state))

	assert.Empty(t, lotQuantities(t, db, bread.ID))
	assert.Equal(t, []int{50}, lotQuantities(t, db, cake.ID))
}

func TestRunDebitingOrder(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.May, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 6)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, bread.ID, 0, day)                      // sıfır temizliği
	seedLot(t, db, bread.ID, 4, date(2025, time.May, 1))  // süresi dolmuş
	seedLot(t, db, bread.ID, 5, date(2025, time.May, 9))  // kalır
	seedLot(t, db, bread.ID, 3, date(2025, time.May, 10)) // taşma kurbanı

	require.NoError(t, runDebiting(db, state))

	assert.Equal(t, []int{5}, lotQuantities(t, db, bread.ID))

	var entries []models.WasteEntry
	require.NoError(t, db.Order("id ASC").Find(&entries).Error)
	require.Len(t, entries, 2)
	assert.False(t, entries[0].Fresh)
	assert.Equal(t, 4, entries[0].Quantity)
	assert.True(t, entries[1].Fresh)
	assert.Equal(t, 3, entries[1].Quantity)
}
