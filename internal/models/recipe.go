package models

import "time"

// Recipe: Üretim reçetesi. (finish_product, name) çifti tekil.
type Recipe struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:64;not null;uniqueIndex:uniq_recipe_product_name"`
	FinishProductID uint   `gorm:"index;not null;uniqueIndex:uniq_recipe_product_name"`
	FinishProduct   Product
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// RecipeIngredient: Reçetenin bir malzemesi. Quantity, bitmiş ürünün bir
// parti birimi başına gereken adettir. (recipe, product) çifti tekil.
type RecipeIngredient struct {
	ID        uint `gorm:"primaryKey"`
	RecipeID  uint `gorm:"index;not null;uniqueIndex:uniq_recipe_ingredient"`
	ProductID uint `gorm:"index;not null;uniqueIndex:uniq_recipe_ingredient"`
	Product   Product
	Quantity  int `gorm:"not null"` // parti birimi başına adet
	CreatedAt time.Time
	UpdatedAt time.Time
}
