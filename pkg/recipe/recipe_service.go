package recipe

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/internal/utils/storage"
	"Api-Recipes/pkg/category"
	"Api-Recipes/pkg/guard"
	"Api-Recipes/pkg/ingredient"
	"Api-Recipes/pkg/uniqueness"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"
)

// Recipe titles are unique with an exact, case-sensitive match,
// unlike category and ingredient names.
var titleKey = uniqueness.Key{
	Model:     &entities.Recipe{},
	Column:    "title",
	Collation: uniqueness.CollationExact,
}

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, page, limit int) ([]domain.Recipe, int64, error)
		GetRecipe(ctx context.Context, id uint) (domain.Recipe, error)
		GetRecipeByTitle(ctx context.Context, title string) (domain.Recipe, error)
		GetMyRecipes(ctx context.Context, userID uint) ([]domain.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID uint) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest, userID uint) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint, userID uint) error
		UploadRecipeImage(ctx context.Context, id uint, userID uint, image *multipart.FileHeader) (domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		categoryService      category.CategoryService
		uniqueness           uniqueness.Validator
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	categoryService category.CategoryService,
	uniquenessValidator uniqueness.Validator,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		categoryService:      categoryService,
		uniqueness:           uniquenessValidator,
		s3:                   s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) ([]domain.Recipe, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toResponse(r))
	}
	return res, count, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (domain.Recipe, error) {
	recipe, err := s.loadRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return toResponse(recipe), nil
}

func (s *recipeService) GetRecipeByTitle(ctx context.Context, title string) (domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByTitle(ctx, strings.TrimSpace(title))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}
	return toResponse(recipe), nil
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID uint) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toResponse(r))
	}
	return res, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID uint) (domain.Recipe, error) {
	title := strings.TrimSpace(req.Title)

	taken, err := s.uniqueness.IsTaken(ctx, titleKey, title)
	if err != nil {
		return domain.Recipe{}, err
	}
	if taken {
		return domain.Recipe{}, domain.ErrRecipeTitleExists
	}

	requested, err := requestedIngredients(req.Ingredients)
	if err != nil {
		return domain.Recipe{}, err
	}

	categories, err := s.categoryService.ResolveByNames(ctx, req.Categories)
	if err != nil {
		return domain.Recipe{}, err
	}

	if _, err := s.resolveIngredients(ctx, ids(requested)); err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Preparation: req.Preparation,
		Status:      entities.RecipeStatusPending,
		Categories:  categories,
	}
	for _, r := range req.Ingredients {
		recipe.RecipeIngredients = append(recipe.RecipeIngredients, &entities.RecipeIngredient{
			IngredientID: r.IngredientID,
			Quantity:     r.Quantity,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	return s.GetRecipe(ctx, recipe.ID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest, userID uint) (domain.Recipe, error) {
	recipe, err := s.loadRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := guard.AssertOwner(recipe.UserID, userID); err != nil {
		return domain.Recipe{}, err
	}

	title := strings.TrimSpace(req.Title)
	taken, err := s.uniqueness.IsTakenExcluding(ctx, titleKey, title, recipe.ID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if taken {
		return domain.Recipe{}, domain.ErrRecipeTitleExists
	}

	requested, err := requestedIngredients(req.Ingredients)
	if err != nil {
		return domain.Recipe{}, err
	}

	// An empty category set is allowed and clears all assignments.
	categories, err := s.categoryService.ResolveByNames(ctx, req.Categories)
	if err != nil {
		return domain.Recipe{}, err
	}

	current := make(map[uint]float64, len(recipe.RecipeIngredients))
	for _, row := range recipe.RecipeIngredients {
		current[row.IngredientID] = row.Quantity
	}

	plan := ReconcileIngredients(current, requested)

	if _, err := s.resolveIngredients(ctx, ids(plan.Add)); err != nil {
		return domain.Recipe{}, err
	}

	recipe.Title = title
	recipe.Description = req.Description
	recipe.Preparation = req.Preparation
	recipe.Status = entities.RecipeStatusPending

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, categories, plan); err != nil {
		return domain.Recipe{}, err
	}

	return s.GetRecipe(ctx, recipe.ID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID uint) error {
	recipe, err := s.loadRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := guard.AssertOwner(recipe.UserID, userID); err != nil {
		return err
	}

	if recipe.ImageURL != "" {
		_ = s.s3.DeleteByURL(recipe.ImageURL)
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id uint, userID uint, image *multipart.FileHeader) (domain.Recipe, error) {
	recipe, err := s.loadRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := guard.AssertOwner(recipe.UserID, userID); err != nil {
		return domain.Recipe{}, err
	}

	if image == nil || image.Size == 0 {
		return domain.Recipe{}, domain.ErrEmptyImage
	}

	key, err := s.s3.UploadFile(image, "recipes", storage.AllowImage...)
	if err != nil {
		return domain.Recipe{}, err
	}

	if recipe.ImageURL != "" {
		_ = s.s3.DeleteByURL(recipe.ImageURL)
	}

	url := s.s3.GetPublicLinkKey(key)
	if err := s.recipeRepository.UpdateImageURL(ctx, id, url); err != nil {
		return domain.Recipe{}, err
	}

	return s.GetRecipe(ctx, id)
}

func (s *recipeService) loadRecipe(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// resolveIngredients looks up every id and fails naming the ones that
// do not exist.
func (s *recipeService) resolveIngredients(ctx context.Context, ingredientIDs []uint) (map[uint]*entities.Ingredient, error) {
	found := make(map[uint]*entities.Ingredient, len(ingredientIDs))
	if len(ingredientIDs) == 0 {
		return found, nil
	}

	ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	for _, ing := range ingredients {
		found[ing.ID] = ing
	}

	var missing []uint
	for _, id := range ingredientIDs {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrIngredientNotFound, missing)
	}

	return found, nil
}

// requestedIngredients turns the request list into a lookup, rejecting
// requests that name the same ingredient twice.
func requestedIngredients(rows []domain.RecipeIngredientRequest) (map[uint]float64, error) {
	requested := make(map[uint]float64, len(rows))
	for _, row := range rows {
		if _, ok := requested[row.IngredientID]; ok {
			return nil, domain.ErrDuplicateIngredient
		}
		requested[row.IngredientID] = row.Quantity
	}
	return requested, nil
}

func ids(m map[uint]float64) []uint {
	out := make([]uint, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out
}

func toResponse(recipe *entities.Recipe) domain.Recipe {
	categories := make([]string, 0, len(recipe.Categories))
	for _, c := range recipe.Categories {
		categories = append(categories, c.Name)
	}

	ingredients := make([]domain.RecipeIngredient, 0, len(recipe.RecipeIngredients))
	for _, row := range recipe.RecipeIngredients {
		item := domain.RecipeIngredient{
			IngredientID: row.IngredientID,
			Quantity:     row.Quantity,
		}
		if row.Ingredient != nil {
			item.Name = row.Ingredient.Name
			item.Unit = row.Ingredient.UnitMeasure
			item.ImageURL = row.Ingredient.ImageURL
		}
		ingredients = append(ingredients, item)
	}

	return domain.Recipe{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		Preparation: recipe.Preparation,
		Categories:  categories,
		Status:      recipe.Status,
		Ingredients: ingredients,
		ImageURL:    recipe.ImageURL,
		UserID:      recipe.UserID,
	}
}
