package simulation

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fabrika-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdvanceDay: Simüle edilen günü bir ilerletir ve üç fazı sabit sırayla
// çalıştırır: üretim -> sipariş karşılama -> stok düşme. Her faz bir
// sonraki başlamadan tamamen biter ve bir önceki fazın etkilerini görür.
// Tamamı tek veritabanı transaction'ı içinde koşar; hata halinde hiçbir
// faz etkisi kalıcı olmaz.
func AdvanceDay(db *gorm.DB) (*models.SimulationState, error) {
	var state models.SimulationState

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&state).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// İlk tik: sadece tarihi başlat, faz çalıştırma.
			state = models.SimulationState{
				CurrentDate: Today(),
				Balance:     decimal.Zero,
			}
			return tx.Create(&state).Error
		}
		if err != nil {
			return err
		}

		state.CurrentDate = state.CurrentDate.AddDate(0, 0, 1)

		if err := runProduction(tx, &state); err != nil {
			return fmt.Errorf("üretim fazı: %w", err)
		}
		if err := runFulfillment(tx, &state); err != nil {
			return fmt.Errorf("sipariş karşılama fazı: %w", err)
		}
		if err := runDebiting(tx, &state); err != nil {
			return fmt.Errorf("stok düşme fazı: %w", err)
		}

		return tx.Save(&state).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Gün ilerletildi: %s, bakiye: %s",
		state.CurrentDate.Format("2006-01-02"), state.Balance.StringFixed(2))
	return &state, nil
}

// Today: Saat bileşeni olmadan bugünün tarihi (UTC).
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
