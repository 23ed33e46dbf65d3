package user

import (
	"Api-Recipes/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUserWithRelations(ctx context.Context, id uint) error

		SaveResetToken(ctx context.Context, token *entities.PasswordResetToken) error
		GetResetToken(ctx context.Context, token string) (*entities.PasswordResetToken, error)
		DeleteResetToken(ctx context.Context, id uint) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// DeleteUserWithRelations removes the user and everything hanging off
// them: favorites they placed, their recipes with all join rows and
// favorites from other users, and any pending reset token.
func (r *userRepository) DeleteUserWithRelations(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipeIDs []uint
		if err := tx.Model(&entities.Recipe{}).
			Where("user_id = ?", id).
			Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}

		if len(recipeIDs) > 0 {
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&entities.RecipeIngredient{}).Error; err != nil {
				return err
			}
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&entities.Favorite{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM recipe_categories WHERE recipe_id IN ?", recipeIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", recipeIDs).Delete(&entities.Recipe{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.User{}).Error
	})
}

// SaveResetToken keeps at most one pending token per user.
func (r *userRepository) SaveResetToken(ctx context.Context, token *entities.PasswordResetToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&entities.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *userRepository) GetResetToken(ctx context.Context, token string) (*entities.PasswordResetToken, error) {
	var resetToken entities.PasswordResetToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&resetToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &resetToken, nil
}

func (r *userRepository) DeleteResetToken(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PasswordResetToken{}).Error
}
