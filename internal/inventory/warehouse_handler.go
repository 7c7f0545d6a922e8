package inventory

import (
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type WarehouseRequest struct {
	Category    string `json:"category"`
	MaxCapacity int    `json:"max_capacity"`
}

// POST /api/warehouses
func CreateWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WarehouseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "category zorunlu")
		}
		if body.MaxCapacity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "max_capacity 0'dan büyük olmalı")
		}

		warehouse := models.Warehouse{
			Category:    body.Category,
			MaxCapacity: body.MaxCapacity,
		}

		if err := database.DB.Create(&warehouse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Depo oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(warehouse)
	}
}

// GET /api/warehouses
func ListWarehousesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var warehouses []models.Warehouse
		if err := database.DB.Order("id ASC").Find(&warehouses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Depolar listelenemedi")
		}
		return c.JSON(warehouses)
	}
}

// PUT /api/warehouses/:id
func UpdateWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var warehouse models.Warehouse
		if err := database.DB.First(&warehouse, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Depo bulunamadı")
		}

		var body WarehouseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "category zorunlu")
		}
		if body.MaxCapacity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "max_capacity 0'dan büyük olmalı")
		}

		warehouse.Category = body.Category
		warehouse.MaxCapacity = body.MaxCapacity

		if err := database.DB.Save(&warehouse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Depo güncellenemedi")
		}

		return c.JSON(warehouse)
	}
}

// DELETE /api/warehouses/:id
func DeleteWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var warehouse models.Warehouse
		if err := database.DB.First(&warehouse, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Depo bulunamadı")
		}

		var productCount int64
		database.DB.Model(&models.Product{}).Where("warehouse_id = ?", warehouse.ID).Count(&productCount)
		if productCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Depoya bağlı ürünler var, önce onları taşı")
		}

		if err := database.DB.Delete(&warehouse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Depo silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Depo silindi"})
	}
}
