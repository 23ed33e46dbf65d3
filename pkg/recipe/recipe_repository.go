package recipe

import (
	"Api-Recipes/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipeByTitle(ctx context.Context, title string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, categories []*entities.Category, plan ReconcilePlan) error
		DeleteRecipe(ctx context.Context, id uint) error
		UpdateImageURL(ctx context.Context, id uint, url string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("RecipeIngredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByTitle(ctx context.Context, title string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("RecipeIngredients.Ingredient").
		Where("title = ?", title).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("RecipeIngredients.Ingredient").
		Order("popularity desc").
		Offset(offset).Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("RecipeIngredients.Ingredient").
		Where("user_id = ?", userID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe writes the whole aggregate in one transaction: scalar
// fields, the full category replacement, and the three reconcile
// operation sets against the join rows.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, categories []*entities.Category, plan ReconcilePlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Updates(map[string]interface{}{
			"title":       recipe.Title,
			"description": recipe.Description,
			"preparation": recipe.Preparation,
			"status":      recipe.Status,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(recipe).Association("Categories").Replace(categories); err != nil {
			return err
		}

		if len(plan.Remove) > 0 {
			if err := tx.Where("recipe_id = ? AND ingredient_id IN ?", recipe.ID, plan.Remove).
				Delete(&entities.RecipeIngredient{}).Error; err != nil {
				return err
			}
		}

		for ingredientID, quantity := range plan.Update {
			if err := tx.Model(&entities.RecipeIngredient{}).
				Where("recipe_id = ? AND ingredient_id = ?", recipe.ID, ingredientID).
				Update("quantity", quantity).Error; err != nil {
				return err
			}
		}

		for ingredientID, quantity := range plan.Add {
			row := &entities.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredientID,
				Quantity:     quantity,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteRecipe removes the aggregate and every row referencing it in
// one transaction. The cascade is spelled out rather than left to
// foreign key configuration.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_categories WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) UpdateImageURL(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("image_url", url).Error
}
