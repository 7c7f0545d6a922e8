package main

import (
	"log"
	"strings"

	"fabrika-backend/internal/audit"
	"fabrika-backend/internal/auth"
	"fabrika-backend/internal/cashflow"
	"fabrika-backend/internal/catalog"
	"fabrika-backend/internal/config"
	"fabrika-backend/internal/dashboard"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/financial"
	"fabrika-backend/internal/inventory"
	"fabrika-backend/internal/models"
	"fabrika-backend/internal/orders"
	"fabrika-backend/internal/production"
	"fabrika-backend/internal/simulation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Silme ve simülasyon uçları yalnızca admin
	adminOnly := auth.RequireRole(models.RoleAdmin)

	// Müşteriler
	protected.Post("/customers", orders.CreateCustomerHandler())
	protected.Get("/customers", orders.ListCustomersHandler())
	protected.Put("/customers/:id", orders.UpdateCustomerHandler())

	// Tedarikçiler
	protected.Post("/suppliers", catalog.CreateSupplierHandler())
	protected.Get("/suppliers", catalog.ListSuppliersHandler())
	protected.Put("/suppliers/:id", catalog.UpdateSupplierHandler())
	protected.Delete("/suppliers/:id", adminOnly, catalog.DeleteSupplierHandler())

	// Tedarikçi fiyatları
	protected.Post("/supplier-prices", catalog.CreateSupplierPriceHandler())
	protected.Get("/supplier-prices", catalog.ListSupplierPricesHandler())
	protected.Put("/supplier-prices/:id", catalog.UpdateSupplierPriceHandler())
	protected.Delete("/supplier-prices/:id", adminOnly, catalog.DeleteSupplierPriceHandler())
	protected.Post("/supplier-prices/import", catalog.ImportSupplierPricesHandler())

	// Depolar
	protected.Post("/warehouses", inventory.CreateWarehouseHandler())
	protected.Get("/warehouses", inventory.ListWarehousesHandler())
	protected.Put("/warehouses/:id", inventory.UpdateWarehouseHandler())
	protected.Delete("/warehouses/:id", adminOnly, inventory.DeleteWarehouseHandler())

	// Ürünler
	protected.Post("/products", inventory.CreateProductHandler())
	protected.Get("/products", inventory.ListProductsHandler())
	protected.Put("/products/:id", inventory.UpdateProductHandler())
	protected.Delete("/products/:id", adminOnly, inventory.DeleteProductHandler())

	// Stok partileri
	protected.Get("/stock-lots", inventory.ListStockLotsHandler())
	protected.Post("/stock-lots/intake", adminOnly, inventory.IntakeStockHandler())

	// Reçeteler
	protected.Post("/recipes", production.CreateRecipeHandler())
	protected.Get("/recipes", production.ListRecipesHandler())
	protected.Delete("/recipes/:id", adminOnly, production.DeleteRecipeHandler())
	protected.Post("/recipe-ingredients", production.CreateRecipeIngredientHandler())
	protected.Put("/recipe-ingredients/:id", production.UpdateRecipeIngredientHandler())
	protected.Delete("/recipe-ingredients/:id", adminOnly, production.DeleteRecipeIngredientHandler())

	// Atölyeler
	protected.Post("/workshops", production.CreateWorkshopHandler())
	protected.Get("/workshops", production.ListWorkshopsHandler())
	protected.Put("/workshops/:id", production.UpdateWorkshopHandler())
	protected.Delete("/workshops/:id", adminOnly, production.DeleteWorkshopHandler())

	// Siparişler
	protected.Post("/orders", orders.CreateOrderHandler())
	protected.Get("/orders", orders.ListOrdersHandler())
	protected.Put("/orders/:id", orders.UpdateOrderHandler())
	protected.Delete("/orders/:id", adminOnly, orders.DeleteOrderHandler())

	// Simülasyon
	protected.Get("/simulation/state", simulation.GetStateHandler())
	protected.Post("/simulation/advance-day", adminOnly, simulation.AdvanceDayHandler())

	// Fişler ve düşme kayıtları
	protected.Get("/receipts", cashflow.ListReceiptsHandler())
	protected.Get("/waste-entries", cashflow.ListWasteEntriesHandler())

	// Finansal özet
	protected.Get("/financial-summary/monthly", financial.MonthlySummaryHandler())

	// Dashboard
	protected.Get("/dashboard/cash-chart", dashboard.CashChartHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
