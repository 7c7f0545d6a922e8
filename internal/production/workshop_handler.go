package production

import (
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type WorkshopRequest struct {
	Name          string  `json:"name"`
	MaxThroughput float64 `json:"max_throughput"`
	RecipeID      *uint   `json:"recipe_id"` // null = boşta
}

type WorkshopResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	MaxThroughput float64 `json:"max_throughput"`
	RecipeID      *uint   `json:"recipe_id"`
	RecipeName    string  `json:"recipe_name,omitempty"`
}

func validateWorkshopRequest(body *WorkshopRequest) error {
	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
	}
	if body.MaxThroughput < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "max_throughput negatif olamaz")
	}
	if body.RecipeID != nil {
		var recipe models.Recipe
		if err := database.DB.First(&recipe, "id = ?", *body.RecipeID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Reçete bulunamadı")
		}
	}
	return nil
}

func toWorkshopResponse(w *models.Workshop) WorkshopResponse {
	resp := WorkshopResponse{
		ID:            w.ID,
		Name:          w.Name,
		MaxThroughput: w.MaxThroughput,
		RecipeID:      w.RecipeID,
	}
	if w.Recipe != nil {
		resp.RecipeName = w.Recipe.Name
	}
	return resp
}

// POST /api/workshops
func CreateWorkshopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WorkshopRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateWorkshopRequest(&body); err != nil {
			return err
		}

		workshop := models.Workshop{
			Name:          body.Name,
			MaxThroughput: body.MaxThroughput,
			RecipeID:      body.RecipeID,
		}
		if err := database.DB.Create(&workshop).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Atölye oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toWorkshopResponse(&workshop))
	}
}

// GET /api/workshops
func ListWorkshopsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var workshops []models.Workshop
		if err := database.DB.Preload("Recipe").Order("id ASC").Find(&workshops).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Atölyeler listelenemedi")
		}

		resp := make([]WorkshopResponse, 0, len(workshops))
		for i := range workshops {
			resp = append(resp, toWorkshopResponse(&workshops[i]))
		}
		return c.JSON(resp)
	}
}

// PUT /api/workshops/:id
func UpdateWorkshopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var workshop models.Workshop
		if err := database.DB.First(&workshop, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Atölye bulunamadı")
		}

		var body WorkshopRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateWorkshopRequest(&body); err != nil {
			return err
		}

		workshop.Name = body.Name
		workshop.MaxThroughput = body.MaxThroughput
		workshop.RecipeID = body.RecipeID
		workshop.Recipe = nil

		// RecipeID null'a çekilebildiği için Update ile yaz
		if err := database.DB.Model(&workshop).
			Select("name", "max_throughput", "recipe_id").
			Updates(map[string]interface{}{
				"name":           workshop.Name,
				"max_throughput": workshop.MaxThroughput,
				"recipe_id":      workshop.RecipeID,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Atölye güncellenemedi")
		}

		return c.JSON(toWorkshopResponse(&workshop))
	}
}

// DELETE /api/workshops/:id
func DeleteWorkshopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var workshop models.Workshop
		if err := database.DB.First(&workshop, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Atölye bulunamadı")
		}

		if err := database.DB.Delete(&workshop).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Atölye silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Atölye silindi"})
	}
}
