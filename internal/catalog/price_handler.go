package catalog

import (
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SupplierPriceRequest struct {
	SupplierID uint   `json:"supplier_id"`
	ProductID  uint   `json:"product_id"`
	Price      string `json:"price"` // "12.50"
}

type SupplierPriceResponse struct {
	ID           uint   `json:"id"`
	SupplierID   uint   `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product_name"`
	Price        string `json:"price"`
}

func parsePriceRequest(c *fiber.Ctx, body *SupplierPriceRequest) (decimal.Decimal, error) {
	if err := c.BodyParser(body); err != nil {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if body.SupplierID == 0 || body.ProductID == 0 {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "supplier_id ve product_id zorunlu")
	}

	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "price geçersiz")
	}
	if price.IsNegative() {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "price negatif olamaz")
	}

	var supplier models.Supplier
	if err := database.DB.First(&supplier, "id = ?", body.SupplierID).Error; err != nil {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "Tedarikçi bulunamadı")
	}
	var product models.Product
	if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "Ürün bulunamadı")
	}

	return price, nil
}

// POST /api/supplier-prices
func CreateSupplierPriceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SupplierPriceRequest
		price, err := parsePriceRequest(c, &body)
		if err != nil {
			return err
		}

		// (tedarikçi, ürün) çifti tekil
		var count int64
		database.DB.Model(&models.SupplierPrice{}).
			Where("supplier_id = ? AND product_id = ?", body.SupplierID, body.ProductID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu tedarikçi için bu ürünün fiyatı zaten tanımlı")
		}

		sp := models.SupplierPrice{
			SupplierID: body.SupplierID,
			ProductID:  body.ProductID,
			Price:      price,
		}
		if err := database.DB.Create(&sp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fiyat oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": sp.ID})
	}
}

// GET /api/supplier-prices
// ?product_id=3&supplier_id=1
func ListSupplierPricesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Preload("Supplier").Preload("Product").Order("id ASC")

		if pid := c.Query("product_id"); pid != "" {
			query = query.Where("product_id = ?", pid)
		}
		if sid := c.Query("supplier_id"); sid != "" {
			query = query.Where("supplier_id = ?", sid)
		}

		var prices []models.SupplierPrice
		if err := query.Find(&prices).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fiyatlar listelenemedi")
		}

		resp := make([]SupplierPriceResponse, 0, len(prices))
		for _, sp := range prices {
			resp = append(resp, SupplierPriceResponse{
				ID:           sp.ID,
				SupplierID:   sp.SupplierID,
				SupplierName: sp.Supplier.Name,
				ProductID:    sp.ProductID,
				ProductName:  sp.Product.Name,
				Price:        sp.Price.StringFixed(2),
			})
		}

		return c.JSON(resp)
	}
}

// PUT /api/supplier-prices/:id
func UpdateSupplierPriceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var sp models.SupplierPrice
		if err := database.DB.First(&sp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Fiyat bulunamadı")
		}

		var body SupplierPriceRequest
		price, err := parsePriceRequest(c, &body)
		if err != nil {
			return err
		}

		var count int64
		database.DB.Model(&models.SupplierPrice{}).
			Where("supplier_id = ? AND product_id = ? AND id != ?", body.SupplierID, body.ProductID, sp.ID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu tedarikçi için bu ürünün fiyatı zaten tanımlı")
		}

		sp.SupplierID = body.SupplierID
		sp.ProductID = body.ProductID
		sp.Price = price

		if err := database.DB.Save(&sp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fiyat güncellenemedi")
		}

		return c.JSON(fiber.Map{"id": sp.ID})
	}
}

// DELETE /api/supplier-prices/:id
func DeleteSupplierPriceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var sp models.SupplierPrice
		if err := database.DB.First(&sp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Fiyat bulunamadı")
		}

		if err := database.DB.Delete(&sp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fiyat silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Fiyat silindi"})
	}
}
