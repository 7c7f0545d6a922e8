package simulation

import (
	"errors"
	"fmt"

	"fabrika-backend/internal/audit"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StateResponse struct {
	CurrentDate string `json:"current_date"`
	Balance     string `json:"balance"`
}

// POST /api/simulation/advance-day
// Günü bir ilerletir ve üç fazı çalıştırır. Sadece admin.
func AdvanceDayHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := AdvanceDay(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError,
				fmt.Sprintf("Gün ilerletilemedi: %v", err))
		}

		// Audit log
		userID, userName, aerr := audit.GetUserInfo(c)
		if aerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "simulation",
				EntityID:    state.ID,
				Action:      models.AuditActionAdvanceDay,
				Description: fmt.Sprintf("Gün ilerletildi: %s", state.CurrentDate.Format("2006-01-02")),
				After:       state,
			})
		}

		return c.JSON(StateResponse{
			CurrentDate: state.CurrentDate.Format("2006-01-02"),
			Balance:     state.Balance.StringFixed(2),
		})
	}
}

// GET /api/simulation/state
func GetStateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var state models.SimulationState
		if err := database.DB.First(&state).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Simülasyon henüz başlatılmamış")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Simülasyon durumu okunamadı")
		}

		return c.JSON(StateResponse{
			CurrentDate: state.CurrentDate.Format("2006-01-02"),
			Balance:     state.Balance.StringFixed(2),
		})
	}
}
