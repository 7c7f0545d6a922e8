package inventory

import (
	"fmt"

	"fabrika-backend/internal/audit"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductRequest struct {
	Name        string  `json:"name"`
	WarehouseID uint    `json:"warehouse_id"`
	ExpiryDays  int     `json:"expiry_days"`
	Mass        float64 `json:"mass"`
}

func validateProductRequest(body *ProductRequest) error {
	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
	}
	if body.WarehouseID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "warehouse_id zorunlu")
	}
	if body.ExpiryDays < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "expiry_days negatif olamaz")
	}
	if body.Mass < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "mass negatif olamaz")
	}

	var warehouse models.Warehouse
	if err := database.DB.First(&warehouse, "id = ?", body.WarehouseID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Depo bulunamadı (ID: %d)", body.WarehouseID))
	}
	return nil
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateProductRequest(&body); err != nil {
			return err
		}

		// İsim tekil
		var count int64
		database.DB.Model(&models.Product{}).Where("name = ?", body.Name).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu isimde bir ürün zaten var")
		}

		product := models.Product{
			Name:        body.Name,
			WarehouseID: body.WarehouseID,
			ExpiryDays:  body.ExpiryDays,
			Mass:        body.Mass,
		}

		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Preload("Warehouse").Order("id ASC").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}
		return c.JSON(products)
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateProductRequest(&body); err != nil {
			return err
		}

		var count int64
		database.DB.Model(&models.Product{}).
			Where("name = ? AND id != ?", body.Name, product.ID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu isimde bir ürün zaten var")
		}

		product.Name = body.Name
		product.WarehouseID = body.WarehouseID
		product.ExpiryDays = body.ExpiryDays
		product.Mass = body.Mass

		if err := database.DB.Save(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(product)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		// Audit log
		userID, userName, aerr := audit.GetUserInfo(c)
		if aerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "product",
				EntityID:    product.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Ürün silindi: %s", product.Name),
				Before:      product,
			})
		}

		if err := database.DB.Delete(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Ürün silindi"})
	}
}
