package simulation

import (
	"testing"
	"time"

	"fabrika-backend/internal/models"
	"fabrika-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWorkshopConsumesStockWhenNoSupplier(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.March, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	flour := seedProduct(t, db, "Un", wh.ID, 30, 1)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, flour.ID, 50, day)

	// Kapasite 10 kg, ürün 2 kg: parti sayısı q = 5. Malzeme 3 x 5 = 15.
	recipe := seedRecipe(t, db, "Standart", bread.ID, []ingredientSpec{{flour.ID, 3}})
	ws := seedWorkshop(t, db, 10, &recipe.ID)

	require.NoError(t, runWorkshop(db, state, ws))

	assert.Equal(t, []int{35}, lotQuantities(t, db, flour.ID))
	assert.Equal(t, []int{5}, lotQuantities(t, db, bread.ID))
	assert.Equal(t, int64(0), receiptCount(t, db))
	assert.True(t, state.Balance.IsZero())

	var got models.Workshop
	require.NoError(t, db.First(&got, ws.ID).Error)
	assert.Nil(t, got.RecipeID)
}

func TestRunWorkshopPurchasesShortage(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.March, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	flour := seedProduct(t, db, "Un", wh.ID, 30, 1)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, flour.ID, 2, day)
	seedSupplierPrice(t, db, flour.ID, "3.00")

	recipe := seedRecipe(t, db, "Standart", bread.ID, []ingredientSpec{{flour.ID, 3}})
	ws := seedWorkshop(t, db, 10, &recipe.ID)

	require.NoError(t, runWorkshop(db, state, ws))

	// Eksik 15-2=13 adet alınır, malzemenin tüm partileri silinir, üretim
	// yine de tamamlanır.
	assert.Empty(t, lotQuantities(t, db, flour.ID))
	assert.Equal(t, []int{5}, lotQuantities(t, db, bread.ID))
	assert.Equal(t, int64(1), receiptCount(t, db))
	assert.Equal(t, "-39.00", state.Balance.StringFixed(2))

	var receipt models.Receipt
	require.NoError(t, db.Preload("Items").First(&receipt).Error)
	require.NotNil(t, receipt.SupplierID)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "3.00", receipt.Items[0].Price.StringFixed(2))
}

func TestRunWorkshopPurchasesEvenWithAmpleStock(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.March, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	flour := seedProduct(t, db, "Un", wh.ID, 30, 1)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, flour.ID, 50, day)
	seedSupplierPrice(t, db, flour.ID, "2.00")

	recipe := seedRecipe(t, db, "Standart", bread.ID, []ingredientSpec{{flour.ID, 3}})
	ws := seedWorkshop(t, db, 10, &recipe.ID)

	require.NoError(t, runWorkshop(db, state, ws))

	// Tedarikçi varken stok yeterli olsa bile satın alma yolu işler:
	// eldeki partiler komple silinir ve (15-50)*2.00 bakiyeye işlenir.
	assert.Empty(t, lotQuantities(t, db, flour.ID))
	assert.Equal(t, []int{5}, lotQuantities(t, db, bread.ID))
	assert.Equal(t, int64(1), receiptCount(t, db))
	assert.Equal(t, "70.00", state.Balance.StringFixed(2))
}

func TestRunWorkshopUnmetWithoutSupplier(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.March, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	flour := seedProduct(t, db, "Un", wh.ID, 30, 1)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	seedLot(t, db, flour.ID, 2, day)

	recipe := seedRecipe(t, db, "Standart", bread.ID, []ingredientSpec{{flour.ID, 3}})
	ws := seedWorkshop(t, db, 10, &recipe.ID)

	require.NoError(t, runWorkshop(db, state, ws))

	// Satan tedarikçi yok: partilere dokunulmaz, üretim olmaz, atama yine
	// de temizlenir.
	assert.Equal(t, []int{2}, lotQuantities(t, db, flour.ID))
	assert.Empty(t, lotQuantities(t, db, bread.ID))
	assert.Equal(t, int64(0), receiptCount(t, db))

	var got models.Workshop
	require.NoError(t, db.First(&got, ws.ID).Error)
	assert.Nil(t, got.RecipeID)
}

func TestRunWorkshopZeroMassSkipsProduction(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.March, 10)
	state := seedState(t, db, day)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 0)

	recipe := seedRecipe(t, db, "Standart", bread.ID, nil)
	ws := seedWorkshop(t, db, 10, &recipe.ID)

	require.NoError(t, runWorkshop(db, state, ws))

	assert.Empty(t, lotQuantities(t, db, bread.ID))
	var got models.Workshop
	require.NoError(t, db.First(&got, ws.ID).Error)
	assert.Nil(t, got.RecipeID)
}

func TestRunWorkshopDeletedRecipeClearsAssignment(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.March, 10)
	state := seedState(t, db, day)

	missing := uint(999)
	ws := seedWorkshop(t, db, 10, &missing)

	require.NoError(t, runWorkshop(db, state, ws))

	var got models.Workshop
	require.NoError(t, db.First(&got, ws.ID).Error)
	assert.Nil(t, got.RecipeID)
}

func TestReassignWorkshopsPairsInOrder(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.March, 10)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	cake := seedProduct(t, db, "Kek", wh.ID, 5, 1)
	noRecipeProduct := seedProduct(t, db, "Su", wh.ID, 5, 1)

	breadRecipe := seedRecipe(t, db, "Standart", bread.ID, nil)
	breadRecipe2 := seedRecipe(t, db, "Alternatif", bread.ID, nil)
	cakeRecipe := seedRecipe(t, db, "Standart", cake.ID, nil)
	_ = breadRecipe2

	seedOrder(t, db, noRecipeProduct.ID, 5, "1.00", day) // reçetesiz, atölye harcamaz
	seedOrder(t, db, bread.ID, 5, "4.00", day)
	seedOrder(t, db, cake.ID, 5, "2.00", day)

	ws1 := seedWorkshop(t, db, 10, nil)
	ws2 := seedWorkshop(t, db, 10, nil)

	require.NoError(t, reassignWorkshops(db))

	var got1, got2 models.Workshop
	require.NoError(t, db.First(&got1, ws1.ID).Error)
	require.NoError(t, db.First(&got2, ws2.ID).Error)

	// İlk boş atölye ilk reçeteli siparişi alır; aynı ürünün reçetelerinden
	// en düşük ID'li olan seçilir.
	require.NotNil(t, got1.RecipeID)
	assert.Equal(t, breadRecipe.ID, *got1.RecipeID)
	require.NotNil(t, got2.RecipeID)
	assert.Equal(t, cakeRecipe.ID, *got2.RecipeID)
}

func TestReassignWorkshopsStopsWhenWorkshopsExhausted(t *testing.T) {
	db := testutil.NewDB(t)
	day := date(2025, time.March, 10)

	wh := seedWarehouse(t, db, 1000)
	bread := seedProduct(t, db, "Ekmek", wh.ID, 5, 2)
	cake := seedProduct(t, db, "Kek", wh.ID, 5, 1)
	seedRecipe(t, db, "Standart", bread.ID, nil)
	seedRecipe(t, db, "Standart", cake.ID, nil)

	seedOrder(t, db, bread.ID, 5, "4.00", day)
	seedOrder(t, db, cake.ID, 5, "2.00", day)

	ws := seedWorkshop(t, db, 10, nil)

	require.NoError(t, reassignWorkshops(db))

	var got models.Workshop
	require.NoError(t, db.First(&got, ws.ID).Error)
	require.NotNil(t, got.RecipeID)

	var recipe models.Recipe
	require.NoError(t, db.First(&recipe, *got.RecipeID).Error)
	assert.Equal(t, bread.ID, recipe.FinishProductID)
}
