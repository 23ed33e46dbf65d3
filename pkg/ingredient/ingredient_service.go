package ingredient

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/internal/utils/storage"
	"Api-Recipes/pkg/uniqueness"
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"
)

// Ingredient names are stored normalized: trimmed and upper-cased.
var nameKey = uniqueness.Key{
	Model:     &entities.Ingredient{},
	Column:    "name",
	Collation: uniqueness.CollationFoldCase,
}

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.Ingredient, error)
		GetIngredient(ctx context.Context, id uint) (domain.Ingredient, error)
		SearchIngredients(ctx context.Context, name string) ([]domain.Ingredient, error)
		GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error)
		UpdateIngredient(ctx context.Context, id uint, req domain.IngredientRequest) (domain.Ingredient, error)
		EnableIngredient(ctx context.Context, id uint) error
		DisableIngredient(ctx context.Context, id uint) error
		UploadIngredientImage(ctx context.Context, id uint, image *multipart.FileHeader) (domain.Ingredient, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		uniqueness           uniqueness.Validator
		s3                   storage.AwsS3
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, uniquenessValidator uniqueness.Validator, s3 storage.AwsS3) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		uniqueness:           uniquenessValidator,
		s3:                   s3,
	}
}

func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.Ingredient, error) {
	if !entities.ValidUnitMeasure(req.UnitMeasure) {
		return domain.Ingredient{}, domain.ErrInvalidUnitMeasure
	}

	name := NormalizeName(req.Name)
	taken, err := s.uniqueness.IsTaken(ctx, nameKey, name)
	if err != nil {
		return domain.Ingredient{}, err
	}
	if taken {
		return domain.Ingredient{}, domain.ErrIngredientExists
	}

	ingredient := &entities.Ingredient{
		Name:        name,
		UnitMeasure: req.UnitMeasure,
		Active:      true,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.Ingredient{}, err
	}
	return toResponse(ingredient), nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id uint) (domain.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Ingredient{}, domain.ErrIngredientNotFound
		}
		return domain.Ingredient{}, err
	}
	return toResponse(ingredient), nil
}

func (s *ingredientService) SearchIngredients(ctx context.Context, name string) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, NormalizeName(name), true)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, toResponse(ingredient))
	}
	return res, nil
}

// GetAllIngredients includes disabled ingredients, unlike search.
func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, "", false)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, toResponse(ingredient))
	}
	return res, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, req domain.IngredientRequest) (domain.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Ingredient{}, domain.ErrIngredientNotFound
		}
		return domain.Ingredient{}, err
	}

	if !entities.ValidUnitMeasure(req.UnitMeasure) {
		return domain.Ingredient{}, domain.ErrInvalidUnitMeasure
	}

	name := NormalizeName(req.Name)
	taken, err := s.uniqueness.IsTakenExcluding(ctx, nameKey, name, id)
	if err != nil {
		return domain.Ingredient{}, err
	}
	if taken {
		return domain.Ingredient{}, domain.ErrIngredientExists
	}

	ingredient.Name = name
	ingredient.UnitMeasure = req.UnitMeasure
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.Ingredient{}, err
	}
	return toResponse(ingredient), nil
}

func (s *ingredientService) EnableIngredient(ctx context.Context, id uint) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return s.ingredientRepository.SetActive(ctx, id, true)
}

func (s *ingredientService) DisableIngredient(ctx context.Context, id uint) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	used, err := s.ingredientRepository.CountUsage(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.SetActive(ctx, id, false)
}

func (s *ingredientService) UploadIngredientImage(ctx context.Context, id uint, image *multipart.FileHeader) (domain.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Ingredient{}, domain.ErrIngredientNotFound
		}
		return domain.Ingredient{}, err
	}

	if image == nil || image.Size == 0 {
		return domain.Ingredient{}, domain.ErrEmptyImage
	}

	key, err := s.s3.UploadFile(image, "ingredients", storage.AllowImage...)
	if err != nil {
		return domain.Ingredient{}, err
	}

	if ingredient.ImageURL != "" {
		_ = s.s3.DeleteByURL(ingredient.ImageURL)
	}

	ingredient.ImageURL = s.s3.GetPublicLinkKey(key)
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.Ingredient{}, err
	}
	return toResponse(ingredient), nil
}

func toResponse(ingredient *entities.Ingredient) domain.Ingredient {
	return domain.Ingredient{
		ID:          ingredient.ID,
		Name:        ingredient.Name,
		UnitMeasure: ingredient.UnitMeasure,
		Active:      ingredient.Active,
		ImageURL:    ingredient.ImageURL,
	}
}
