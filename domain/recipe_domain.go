package domain

import (
	"Api-Recipes/entities"
	"errors"
)

var (
	MessageSuccessGetRecipes   = "success get recipes"
	MessageSuccessGetRecipe    = "success get recipe detail"
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessUploadImage  = "image uploaded successfully"

	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedGetRecipe    = "failed to get recipe detail"
	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedUploadImage  = "failed to upload image"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeTitleExists   = errors.New("a recipe with this title already exists")
	ErrDuplicateIngredient = errors.New("duplicate ingredient in request")
	ErrAccessDenied        = errors.New("no permission to modify this resource")
	ErrEmptyImage          = errors.New("image file is empty")
)

type (
	RecipeIngredientRequest struct {
		IngredientID uint    `json:"ingredient_id" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	}

	RecipeRequest struct {
		Title       string                    `json:"title" validate:"required,min=5,max=100"`
		Description string                    `json:"description" validate:"required,min=10,max=1000"`
		Preparation string                    `json:"preparation" validate:"required,min=5"`
		Categories  []string                  `json:"categories" validate:"omitempty,dive,required"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	RecipeIngredient struct {
		IngredientID uint                 `json:"ingredient_id"`
		Name         string               `json:"name"`
		Quantity     float64              `json:"quantity"`
		Unit         entities.UnitMeasure `json:"unit"`
		ImageURL     string               `json:"image_url,omitempty"`
	}

	Recipe struct {
		ID          uint                  `json:"id"`
		Title       string                `json:"title"`
		Description string                `json:"description"`
		Preparation string                `json:"preparation"`
		Categories  []string              `json:"categories"`
		Status      entities.RecipeStatus `json:"status"`
		Ingredients []RecipeIngredient    `json:"ingredients"`
		ImageURL    string                `json:"image_url,omitempty"`
		UserID      uint                  `json:"user_id"`
	}
)
