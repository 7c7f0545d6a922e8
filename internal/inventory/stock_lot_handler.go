package inventory

import (
	"errors"
	"fmt"
	"time"

	"fabrika-backend/internal/audit"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type IntakeRequest struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Date      string `json:"date"` // "2025-12-09", boşsa simülasyon tarihi
}

type StockLotResponse struct {
	ID             uint   `json:"id"`
	ProductID      uint   `json:"product_id"`
	ProductName    string `json:"product_name"`
	WarehouseID    uint   `json:"warehouse_id"`
	Quantity       int    `json:"quantity"`
	ProductionDate string `json:"production_date"`
}

// POST /api/stock-lots/intake
// Manuel stok girişi. Ürünü satan tedarikçi yoksa reddedilir.
func IntakeStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body IntakeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "product_id zorunlu")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity 0'dan büyük olmalı")
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün bulunamadı")
		}

		var d time.Time
		if body.Date == "" {
			var state models.SimulationState
			if err := database.DB.First(&state).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih verilmedi ve simülasyon tarihi yok")
			}
			d = state.CurrentDate
		} else {
			var err error
			d, err = time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
		}

		lot, err := IntakeStock(database.DB, body.ProductID, body.Quantity, d)
		if err != nil {
			if errors.Is(err, ErrNoSupplier) {
				return fiber.NewError(fiber.StatusBadRequest, "Bu ürünü satan tedarikçi yok, stok girişi yapılamaz")
			}
			if errors.Is(err, ErrNoState) {
				return fiber.NewError(fiber.StatusBadRequest, "Simülasyon henüz başlatılmamış")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Stok girişi yapılamadı")
		}

		// Audit log
		userID, userName, aerr := audit.GetUserInfo(c)
		if aerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "stock_lot",
				EntityID:    lot.ID,
				Action:      models.AuditActionIntake,
				Description: fmt.Sprintf("Stok girişi: %s - %d adet", product.Name, lot.Quantity),
				After:       lot,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(StockLotResponse{
			ID:             lot.ID,
			ProductID:      lot.ProductID,
			ProductName:    product.Name,
			WarehouseID:    product.WarehouseID,
			Quantity:       lot.Quantity,
			ProductionDate: lot.ProductionDate.Format("2006-01-02"),
		})
	}
}

// GET /api/stock-lots
// ?product_id=3&warehouse_id=1
func ListStockLotsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Preload("Product").Order("id ASC")

		if pid := c.Query("product_id"); pid != "" {
			query = query.Where("product_id = ?", pid)
		}
		if wid := c.Query("warehouse_id"); wid != "" {
			query = query.
				Joins("JOIN products ON products.id = stock_lots.product_id").
				Where("products.warehouse_id = ?", wid)
		}

		var lots []models.StockLot
		if err := query.Find(&lots).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok partileri listelenemedi")
		}

		resp := make([]StockLotResponse, 0, len(lots))
		for _, lot := range lots {
			resp = append(resp, StockLotResponse{
				ID:             lot.ID,
				ProductID:      lot.ProductID,
				ProductName:    lot.Product.Name,
				WarehouseID:    lot.Product.WarehouseID,
				Quantity:       lot.Quantity,
				ProductionDate: lot.ProductionDate.Format("2006-01-02"),
			})
		}

		return c.JSON(resp)
	}
}
