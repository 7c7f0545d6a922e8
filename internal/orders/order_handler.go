package orders

import (
	"fmt"
	"time"

	"fabrika-backend/internal/audit"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type OrderRequest struct {
	CustomerID *uint  `json:"customer_id"` // opsiyonel
	ProductID  uint   `json:"product_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"` // "12.50"
	OrderDate  string `json:"order_date"` // boşsa simülasyon tarihi
}

type OrderResponse struct {
	ID           uint   `json:"id"`
	CustomerID   *uint  `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	OrderDate    string `json:"order_date"`
}

func toOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		ProductID:   o.ProductID,
		ProductName: o.Product.Name,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice.StringFixed(2),
		OrderDate:   o.OrderDate.Format("2006-01-02"),
	}
	if o.Customer != nil {
		resp.CustomerName = o.Customer.Name
	}
	return resp
}

// POST /api/orders
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "product_id zorunlu")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity 0'dan büyük olmalı")
		}

		unitPrice, err := decimal.NewFromString(body.UnitPrice)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unit_price geçersiz")
		}
		if unitPrice.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "unit_price negatif olamaz")
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün bulunamadı")
		}

		if body.CustomerID != nil {
			var customer models.Customer
			if err := database.DB.First(&customer, "id = ?", *body.CustomerID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Müşteri bulunamadı")
			}
		}

		// Sipariş tarihi verilmediyse simülasyonun güncel tarihi kullanılır
		var orderDate time.Time
		if body.OrderDate == "" {
			var state models.SimulationState
			if err := database.DB.First(&state).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "order_date verilmedi ve simülasyon tarihi yok")
			}
			orderDate = state.CurrentDate
		} else {
			orderDate, err = time.Parse("2006-01-02", body.OrderDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
		}

		order := models.Order{
			CustomerID: body.CustomerID,
			ProductID:  body.ProductID,
			Quantity:   body.Quantity,
			UnitPrice:  unitPrice,
			OrderDate:  orderDate,
		}
		if err := database.DB.Create(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
		}

		order.Product = product
		return c.Status(fiber.StatusCreated).JSON(toOrderResponse(&order))
	}
}

// GET /api/orders
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.Preload("Product").Preload("Customer").
			Order("id ASC").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}

		resp := make([]OrderResponse, 0, len(orders))
		for i := range orders {
			resp = append(resp, toOrderResponse(&orders[i]))
		}
		return c.JSON(resp)
	}
}

// PUT /api/orders/:id
func UpdateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var order models.Order
		if err := database.DB.Preload("Product").First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		var body OrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity 0'dan büyük olmalı")
		}

		unitPrice, err := decimal.NewFromString(body.UnitPrice)
		if err != nil || unitPrice.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "unit_price geçersiz")
		}

		order.Quantity = body.Quantity
		order.UnitPrice = unitPrice

		if err := database.DB.Save(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
		}

		return c.JSON(toOrderResponse(&order))
	}
}

// DELETE /api/orders/:id
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var order models.Order
		if err := database.DB.First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		// Audit log
		userID, userName, aerr := audit.GetUserInfo(c)
		if aerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "order",
				EntityID:    order.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Sipariş silindi (ID: %d, kalan: %d)", order.ID, order.Quantity),
				Before:      order,
			})
		}

		if err := database.DB.Delete(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Sipariş silindi"})
	}
}
