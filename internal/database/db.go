package database

import (
	"log"

	"fabrika-backend/internal/config"
	"fabrika-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate: Tüm modelleri migrate eder. Testlerde sqlite üzerinde de
// kullanılır.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Supplier{},
		&models.Warehouse{},
		&models.Product{},
		&models.StockLot{},
		&models.SupplierPrice{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Workshop{},
		&models.Order{},
		&models.Receipt{},
		&models.ReceiptItem{},
		&models.WasteEntry{},
		&models.SimulationState{},
		&models.AuditLog{},
	)
}
