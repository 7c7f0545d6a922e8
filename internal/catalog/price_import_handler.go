package catalog

import (
	"fmt"
	"strings"

	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// POST /api/supplier-prices/import
// XLSX dosyasından toplu fiyat listesi yükler. Beklenen kolonlar:
// tedarikçi adı | ürün adı | birim fiyat. Var olan (tedarikçi, ürün)
// çiftinin fiyatı güncellenir, yeni çift eklenir.
func ImportSupplierPricesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası okunamadı: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında sheet bulunamadı")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sheet okunamadı: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası boş")
		}

		// İlk satır başlık satırı mı?
		startIndex := 0
		if len(rows[0]) > 0 {
			firstCell := strings.ToUpper(strings.TrimSpace(rows[0][0]))
			if strings.Contains(firstCell, "TEDARİKÇİ") || strings.Contains(firstCell, "SUPPLIER") {
				startIndex = 1
			}
		}

		imported := 0
		updated := 0
		skipped := make([]string, 0)

		for i := startIndex; i < len(rows); i++ {
			row := rows[i]
			if len(row) < 3 {
				continue
			}

			supplierName := strings.TrimSpace(row[0])
			productName := strings.TrimSpace(row[1])
			priceStr := strings.TrimSpace(row[2])
			if supplierName == "" || productName == "" || priceStr == "" {
				continue
			}

			price, perr := decimal.NewFromString(strings.ReplaceAll(priceStr, ",", "."))
			if perr != nil || price.IsNegative() {
				skipped = append(skipped, fmt.Sprintf("satır %d: fiyat geçersiz", i+1))
				continue
			}

			var supplier models.Supplier
			if err := database.DB.Where("name = ?", supplierName).First(&supplier).Error; err != nil {
				skipped = append(skipped, fmt.Sprintf("satır %d: tedarikçi bulunamadı (%s)", i+1, supplierName))
				continue
			}

			var product models.Product
			if err := database.DB.Where("name = ?", productName).First(&product).Error; err != nil {
				skipped = append(skipped, fmt.Sprintf("satır %d: ürün bulunamadı (%s)", i+1, productName))
				continue
			}

			var sp models.SupplierPrice
			err := database.DB.
				Where("supplier_id = ? AND product_id = ?", supplier.ID, product.ID).
				First(&sp).Error
			if err == nil {
				sp.Price = price
				if err := database.DB.Save(&sp).Error; err == nil {
					updated++
				}
				continue
			}

			sp = models.SupplierPrice{
				SupplierID: supplier.ID,
				ProductID:  product.ID,
				Price:      price,
			}
			if err := database.DB.Create(&sp).Error; err == nil {
				imported++
			}
		}

		return c.JSON(fiber.Map{
			"imported": imported,
			"updated":  updated,
			"skipped":  skipped,
		})
	}
}
