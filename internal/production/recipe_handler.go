package production

import (
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RecipeRequest struct {
	Name            string `json:"name"`
	FinishProductID uint   `json:"finish_product_id"`
}

type RecipeResponse struct {
	ID                uint                 `json:"id"`
	Name              string               `json:"name"`
	FinishProductID   uint                 `json:"finish_product_id"`
	FinishProductName string               `json:"finish_product_name"`
	Ingredients       []IngredientResponse `json:"ingredients"`
}

type IngredientResponse struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

func toRecipeResponse(r *models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:                r.ID,
		Name:              r.Name,
		FinishProductID:   r.FinishProductID,
		FinishProductName: r.FinishProduct.Name,
		Ingredients:       make([]IngredientResponse, 0, len(r.Ingredients)),
	}
	for _, ing := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientResponse{
			ID:          ing.ID,
			ProductID:   ing.ProductID,
			ProductName: ing.Product.Name,
			Quantity:    ing.Quantity,
		})
	}
	return resp
}

// POST /api/recipes
func CreateRecipeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
		}
		if body.FinishProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "finish_product_id zorunlu")
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.FinishProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bitmiş ürün bulunamadı")
		}

		// (bitmiş ürün, isim) çifti tekil
		var count int64
		database.DB.Model(&models.Recipe{}).
			Where("finish_product_id = ? AND name = ?", body.FinishProductID, body.Name).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu ürün için bu isimde bir reçete zaten var")
		}

		recipe := models.Recipe{
			Name:            body.Name,
			FinishProductID: body.FinishProductID,
		}
		if err := database.DB.Create(&recipe).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete oluşturulamadı")
		}

		recipe.FinishProduct = product
		return c.Status(fiber.StatusCreated).JSON(toRecipeResponse(&recipe))
	}
}

// GET /api/recipes
func ListRecipesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var recipes []models.Recipe
		if err := database.DB.
			Preload("FinishProduct").
			Preload("Ingredients").
			Preload("Ingredients.Product").
			Order("id ASC").
			Find(&recipes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçeteler listelenemedi")
		}

		resp := make([]RecipeResponse, 0, len(recipes))
		for i := range recipes {
			resp = append(resp, toRecipeResponse(&recipes[i]))
		}
		return c.JSON(resp)
	}
}

// DELETE /api/recipes/:id
func DeleteRecipeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var recipe models.Recipe
		if err := database.DB.First(&recipe, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Reçete bulunamadı")
		}

		// Atölyelerdeki atamaları kaldır
		if err := database.DB.Model(&models.Workshop{}).
			Where("recipe_id = ?", recipe.ID).
			Update("recipe_id", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Atölye atamaları temizlenemedi")
		}

		if err := database.DB.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete malzemeleri silinemedi")
		}

		if err := database.DB.Delete(&recipe).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Reçete silindi"})
	}
}

type IngredientRequest struct {
	RecipeID  uint `json:"recipe_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// POST /api/recipe-ingredients
func CreateRecipeIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body IngredientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.RecipeID == 0 || body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "recipe_id ve product_id zorunlu")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity 0'dan büyük olmalı")
		}

		var recipe models.Recipe
		if err := database.DB.First(&recipe, "id = ?", body.RecipeID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Reçete bulunamadı")
		}
		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün bulunamadı")
		}

		// (reçete, ürün) çifti tekil
		var count int64
		database.DB.Model(&models.RecipeIngredient{}).
			Where("recipe_id = ? AND product_id = ?", body.RecipeID, body.ProductID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu malzeme reçetede zaten var")
		}

		ing := models.RecipeIngredient{
			RecipeID:  body.RecipeID,
			ProductID: body.ProductID,
			Quantity:  body.Quantity,
		}
		if err := database.DB.Create(&ing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete malzemesi oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": ing.ID})
	}
}

// PUT /api/recipe-ingredients/:id
func UpdateRecipeIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var ing models.RecipeIngredient
		if err := database.DB.First(&ing, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Reçete malzemesi bulunamadı")
		}

		var body IngredientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity 0'dan büyük olmalı")
		}

		ing.Quantity = body.Quantity
		if err := database.DB.Save(&ing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete malzemesi güncellenemedi")
		}

		return c.JSON(fiber.Map{"id": ing.ID})
	}
}

// DELETE /api/recipe-ingredients/:id
func DeleteRecipeIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var ing models.RecipeIngredient
		if err := database.DB.First(&ing, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Reçete malzemesi bulunamadı")
		}

		if err := database.DB.Delete(&ing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete malzemesi silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Reçete malzemesi silindi"})
	}
}
