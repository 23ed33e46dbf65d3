package favorite

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/pkg/recipe"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	FavoriteService interface {
		AddFavorite(ctx context.Context, userID, recipeID uint) error
		RemoveFavorite(ctx context.Context, userID, recipeID uint) error
		Exists(ctx context.Context, userID, recipeID uint) (bool, error)
		GetFavorites(ctx context.Context, userID uint) ([]domain.Favorite, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, recipeRepository recipe.RecipeRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID, recipeID uint) error {
	rec, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	if _, err := s.favoriteRepository.GetFavorite(ctx, userID, recipeID); err == nil {
		return domain.ErrFavoriteExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if rec.UserID == userID {
		return domain.ErrOwnFavorite
	}

	return s.favoriteRepository.CreateFavorite(ctx, &entities.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	})
}

// RemoveFavorite deletes the favorite row. Popularity counts lifetime
// favorite events and is not decremented here.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, recipeID uint) error {
	if _, err := s.loadRecipe(ctx, recipeID); err != nil {
		return err
	}

	if _, err := s.favoriteRepository.GetFavorite(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFavoriteNotFound
		}
		return err
	}

	return s.favoriteRepository.DeleteFavorite(ctx, userID, recipeID)
}

func (s *favoriteService) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	if _, err := s.loadRecipe(ctx, recipeID); err != nil {
		return false, err
	}

	if _, err := s.favoriteRepository.GetFavorite(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	favorites, err := s.favoriteRepository.GetFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Favorite, 0, len(favorites))
	for _, f := range favorites {
		item := domain.Favorite{
			ID:       f.ID,
			RecipeID: f.RecipeID,
		}
		if f.Recipe != nil {
			item.Title = f.Recipe.Title
			item.ImageURL = f.Recipe.ImageURL
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *favoriteService) loadRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return rec, nil
}
