package domain

import (
	"Api-Recipes/entities"
	"errors"
)

var (
	MessageSuccessGetIngredients    = "success get ingredients"
	MessageSuccessGetIngredient     = "success get ingredient detail"
	MessageSuccessCreateIngredient  = "ingredient created successfully"
	MessageSuccessUpdateIngredient  = "ingredient updated successfully"
	MessageSuccessEnableIngredient  = "ingredient enabled successfully"
	MessageSuccessDisableIngredient = "ingredient disabled successfully"

	MessageFailedGetIngredients    = "failed to get ingredients"
	MessageFailedGetIngredient     = "failed to get ingredient detail"
	MessageFailedCreateIngredient  = "failed to create ingredient"
	MessageFailedUpdateIngredient  = "failed to update ingredient"
	MessageFailedEnableIngredient  = "failed to enable ingredient"
	MessageFailedDisableIngredient = "failed to disable ingredient"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientExists   = errors.New("ingredient already exists")
	ErrIngredientInUse    = errors.New("cannot disable an ingredient in use")
	ErrInvalidUnitMeasure = errors.New("invalid unit of measure")
)

type (
	IngredientRequest struct {
		Name        string               `json:"name" validate:"required,min=2,max=50"`
		UnitMeasure entities.UnitMeasure `json:"unit_measure" validate:"required"`
	}

	Ingredient struct {
		ID          uint                 `json:"id"`
		Name        string               `json:"name"`
		UnitMeasure entities.UnitMeasure `json:"unit_measure"`
		Active      bool                 `json:"active"`
		ImageURL    string               `json:"image_url,omitempty"`
	}
)
