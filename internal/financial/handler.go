package financial

import (
	"time"

	"fabrika-backend/internal/catalog"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type MonthlySummaryResponse struct {
	Month            string `json:"month"`
	Revenue          string `json:"revenue"`
	Purchases        string `json:"purchases"`
	WasteRecovery    string `json:"waste_recovery"`
	Net              string `json:"net"`
	SaleCount        int    `json:"sale_count"`
	PurchaseCount    int    `json:"purchase_count"`
	ExpiredWasteQty  int    `json:"expired_waste_qty"`
	OverflowWasteQty int    `json:"overflow_waste_qty"`
}

// GET /api/financial-summary/monthly?month=2025-01
// Ay verilmezse simülasyon tarihinin ayı kullanılır.
func MonthlySummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var monthStart time.Time
		if m := c.Query("month"); m != "" {
			parsed, err := time.Parse("2006-01", m)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Ay formatı geçersiz (YYYY-AA bekleniyor)")
			}
			monthStart = parsed
		} else {
			var state models.SimulationState
			if err := database.DB.First(&state).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Simülasyon henüz başlatılmamış, ay belirtin")
			}
			monthStart = time.Date(state.CurrentDate.Year(), state.CurrentDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
		monthEnd := monthStart.AddDate(0, 1, 0)

		var receipts []models.Receipt
		if err := database.DB.Preload("Items").
			Where("date >= ? AND date < ?", monthStart, monthEnd).
			Find(&receipts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fişler okunamadı")
		}

		resp := MonthlySummaryResponse{Month: monthStart.Format("2006-01")}
		revenue := decimal.Zero
		purchases := decimal.Zero
		for i := range receipts {
			r := &receipts[i]
			if r.CustomerID != nil {
				resp.SaleCount++
				for _, item := range r.Items {
					// Satış satırında Price satır toplamıdır.
					revenue = revenue.Add(item.Price)
				}
			} else if r.SupplierID != nil {
				resp.PurchaseCount++
				for _, item := range r.Items {
					purchases = purchases.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
				}
			}
		}

		var wastes []models.WasteEntry
		if err := database.DB.Where("date >= ? AND date < ?", monthStart, monthEnd).
			Find(&wastes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Düşme kayıtları okunamadı")
		}

		recovery := decimal.Zero
		for _, w := range wastes {
			if w.Fresh {
				resp.OverflowWasteQty += w.Quantity
			} else {
				resp.ExpiredWasteQty += w.Quantity
			}
		}
		// Düşülen mallar en ucuz tedarikçi fiyatından kasaya geri yazılır;
		// özet aynı fiyatla hesaplar.
		for _, w := range wastes {
			sp, err := catalog.Cheapest(database.DB, w.ProductID)
			if err != nil || sp == nil {
				continue
			}
			recovery = recovery.Add(sp.Price.Mul(decimal.NewFromInt(int64(w.Quantity))))
		}

		resp.Revenue = revenue.StringFixed(2)
		resp.Purchases = purchases.StringFixed(2)
		resp.WasteRecovery = recovery.StringFixed(2)
		resp.Net = revenue.Sub(purchases).Add(recovery).StringFixed(2)
		return c.JSON(resp)
	}
}
