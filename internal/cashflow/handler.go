package cashflow

import (
	"time"

	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ReceiptItemResponse struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

type ReceiptResponse struct {
	ID           uint                  `json:"id"`
	Date         string                `json:"date"`
	CustomerID   *uint                 `json:"customer_id,omitempty"`
	CustomerName string                `json:"customer_name,omitempty"`
	SupplierID   *uint                 `json:"supplier_id,omitempty"`
	SupplierName string                `json:"supplier_name,omitempty"`
	Items        []ReceiptItemResponse `json:"items"`
}

// GET /api/receipts
// ?date_from=2025-01-01&date_to=2025-01-31&counterparty=customer|supplier&warehouse_id=1
func ListReceiptsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Model(&models.Receipt{}).
			Preload("Customer").
			Preload("Supplier").
			Preload("Items").
			Preload("Items.Product")

		if dateFrom := c.Query("date_from"); dateFrom != "" {
			if d, err := time.Parse("2006-01-02", dateFrom); err == nil {
				query = query.Where("receipts.date >= ?", d)
			}
		}
		if dateTo := c.Query("date_to"); dateTo != "" {
			if d, err := time.Parse("2006-01-02", dateTo); err == nil {
				// Tarih sonuna kadar (23:59:59)
				d = d.Add(24*time.Hour - time.Second)
				query = query.Where("receipts.date <= ?", d)
			}
		}

		switch c.Query("counterparty") {
		case "customer":
			query = query.Where("receipts.customer_id IS NOT NULL")
		case "supplier":
			query = query.Where("receipts.supplier_id IS NOT NULL")
		case "":
			// filtre yok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "counterparty 'customer' veya 'supplier' olmalı")
		}

		if wid := c.Query("warehouse_id"); wid != "" {
			query = query.
				Joins("JOIN receipt_items ON receipt_items.receipt_id = receipts.id").
				Joins("JOIN products ON products.id = receipt_items.product_id").
				Where("products.warehouse_id = ?", wid).
				Distinct("receipts.*")
		}

		var receipts []models.Receipt
		if err := query.Order("receipts.date DESC, receipts.id DESC").Find(&receipts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fişler listelenemedi")
		}

		resp := make([]ReceiptResponse, 0, len(receipts))
		for i := range receipts {
			resp = append(resp, toReceiptResponse(&receipts[i]))
		}
		return c.JSON(resp)
	}
}

func toReceiptResponse(r *models.Receipt) ReceiptResponse {
	resp := ReceiptResponse{
		ID:         r.ID,
		Date:       r.Date.Format("2006-01-02"),
		CustomerID: r.CustomerID,
		SupplierID: r.SupplierID,
		Items:      make([]ReceiptItemResponse, 0, len(r.Items)),
	}
	if r.Customer != nil {
		resp.CustomerName = r.Customer.Name
	}
	if r.Supplier != nil {
		resp.SupplierName = r.Supplier.Name
	}
	for _, item := range r.Items {
		resp.Items = append(resp.Items, ReceiptItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Price:       item.Price.StringFixed(2),
			Quantity:    item.Quantity,
		})
	}
	return resp
}

type WasteEntryResponse struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
	Fresh       bool   `json:"fresh"`
}

// GET /api/waste-entries
// ?date_from=2025-01-01&date_to=2025-01-31&fresh=true|false
func ListWasteEntriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Preload("Product")

		if dateFrom := c.Query("date_from"); dateFrom != "" {
			if d, err := time.Parse("2006-01-02", dateFrom); err == nil {
				query = query.Where("date >= ?", d)
			}
		}
		if dateTo := c.Query("date_to"); dateTo != "" {
			if d, err := time.Parse("2006-01-02", dateTo); err == nil {
				d = d.Add(24*time.Hour - time.Second)
				query = query.Where("date <= ?", d)
			}
		}
		switch c.Query("fresh") {
		case "true":
			query = query.Where("fresh = ?", true)
		case "false":
			query = query.Where("fresh = ?", false)
		}

		var entries []models.WasteEntry
		if err := query.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Düşme kayıtları listelenemedi")
		}

		resp := make([]WasteEntryResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, WasteEntryResponse{
				ID:          e.ID,
				ProductID:   e.ProductID,
				ProductName: e.Product.Name,
				Quantity:    e.Quantity,
				Date:        e.Date.Format("2006-01-02"),
				Fresh:       e.Fresh,
			})
		}
		return c.JSON(resp)
	}
}
