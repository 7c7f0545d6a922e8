package dashboard

import (
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CashChartPoint struct {
	Date    string `json:"date"`
	Inflow  string `json:"inflow"`
	Outflow string `json:"outflow"`
	Net     string `json:"net"`
}

// GET /api/dashboard/cash-chart?days=30
// Simülasyon tarihinden geriye doğru günlük nakit giriş/çıkış serisi.
func CashChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 30)
		if days < 1 || days > 365 {
			return fiber.NewError(fiber.StatusBadRequest, "days 1 ile 365 arasında olmalı")
		}

		var state models.SimulationState
		if err := database.DB.First(&state).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Simülasyon henüz başlatılmamış")
		}

		end := state.CurrentDate
		start := end.AddDate(0, 0, -(days - 1))

		var receipts []models.Receipt
		if err := database.DB.Preload("Items").
			Where("date >= ? AND date < ?", start, end.AddDate(0, 0, 1)).
			Find(&receipts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fişler okunamadı")
		}

		type dayTotals struct {
			inflow  decimal.Decimal
			outflow decimal.Decimal
		}
		byDay := make(map[string]*dayTotals, days)
		for i := range receipts {
			r := &receipts[i]
			key := r.Date.Format("2006-01-02")
			totals, ok := byDay[key]
			if !ok {
				totals = &dayTotals{inflow: decimal.Zero, outflow: decimal.Zero}
				byDay[key] = totals
			}
			for _, item := range r.Items {
				if r.CustomerID != nil {
					totals.inflow = totals.inflow.Add(item.Price)
				} else if r.SupplierID != nil {
					totals.outflow = totals.outflow.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
				}
			}
		}

		points := make([]CashChartPoint, 0, days)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			inflow, outflow := decimal.Zero, decimal.Zero
			if totals, ok := byDay[key]; ok {
				inflow, outflow = totals.inflow, totals.outflow
			}
			points = append(points, CashChartPoint{
				Date:    key,
				Inflow:  inflow.StringFixed(2),
				Outflow: outflow.StringFixed(2),
				Net:     inflow.Sub(outflow).StringFixed(2),
			})
		}
		return c.JSON(points)
	}
}
