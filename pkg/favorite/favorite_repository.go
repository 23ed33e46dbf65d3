package favorite

import (
	"Api-Recipes/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	FavoriteRepository interface {
		CreateFavorite(ctx context.Context, favorite *entities.Favorite) error
		GetFavorite(ctx context.Context, userID, recipeID uint) (*entities.Favorite, error)
		GetFavoritesByUser(ctx context.Context, userID uint) ([]*entities.Favorite, error)
		DeleteFavorite(ctx context.Context, userID, recipeID uint) error
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite inserts the favorite row and bumps the recipe's
// popularity in the same transaction. The counter is incremented with
// a single UPDATE so concurrent favoriting never loses updates.
func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", favorite.RecipeID).
			UpdateColumn("popularity", gorm.Expr("popularity + 1")).Error; err != nil {
			return err
		}
		return tx.Create(favorite).Error
	})
}

func (r *favoriteRepository) GetFavorite(ctx context.Context, userID, recipeID uint) (*entities.Favorite, error) {
	var favorite entities.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) GetFavoritesByUser(ctx context.Context, userID uint) ([]*entities.Favorite, error) {
	var favorites []*entities.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, userID, recipeID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{}).Error
}
