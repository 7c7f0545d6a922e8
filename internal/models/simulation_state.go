package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulationState: Tekil simülasyon durumu: güncel simüle edilen tarih ve
// kasa bakiyesi. İlk gün ilerletmede oluşturulur, her tikte tarih bir gün
// artar. Bakiye üç fazın da yazdığı tek skalar alandır.
type SimulationState struct {
	ID          uint            `gorm:"primaryKey"`
	CurrentDate time.Time       `gorm:"not null"`
	Balance     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
