package category

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/pkg/uniqueness"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Category names are stored normalized: trimmed and upper-cased.
var nameKey = uniqueness.Key{
	Model:     &entities.Category{},
	Column:    "name",
	Collation: uniqueness.CollationFoldCase,
}

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.Category, error)
		GetCategory(ctx context.Context, id uint) (domain.Category, error)
		GetCategories(ctx context.Context) ([]domain.Category, error)
		UpdateCategory(ctx context.Context, id uint, req domain.CategoryRequest) (domain.Category, error)
		DeleteCategory(ctx context.Context, id uint) error

		// ResolveByNames maps a set of category names to existing
		// records, failing with every missing name listed.
		ResolveByNames(ctx context.Context, names []string) ([]*entities.Category, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		uniqueness         uniqueness.Validator
	}
)

func NewCategoryService(categoryRepository CategoryRepository, uniquenessValidator uniqueness.Validator) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		uniqueness:         uniquenessValidator,
	}
}

func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.Category, error) {
	name := NormalizeName(req.Name)
	if name == "" {
		return domain.Category{}, domain.ErrEmptyCategoryName
	}

	taken, err := s.uniqueness.IsTaken(ctx, nameKey, name)
	if err != nil {
		return domain.Category{}, err
	}
	if taken {
		return domain.Category{}, domain.ErrCategoryExists
	}

	category := &entities.Category{Name: name}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.Category{}, err
	}
	return toResponse(category), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (domain.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return toResponse(category), nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Category, 0, len(categories))
	for _, category := range categories {
		res = append(res, toResponse(category))
	}
	return res, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req domain.CategoryRequest) (domain.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}

	name := NormalizeName(req.Name)
	if name == "" {
		return domain.Category{}, domain.ErrEmptyCategoryName
	}

	taken, err := s.uniqueness.IsTakenExcluding(ctx, nameKey, name, id)
	if err != nil {
		return domain.Category{}, err
	}
	if taken {
		return domain.Category{}, domain.ErrCategoryExists
	}

	category.Name = name
	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return domain.Category{}, err
	}
	return toResponse(category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepository.DeleteCategory(ctx, id)
}

func (s *categoryService) ResolveByNames(ctx context.Context, names []string) ([]*entities.Category, error) {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		n := NormalizeName(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}

	if len(normalized) == 0 {
		return []*entities.Category{}, nil
	}

	categories, err := s.categoryRepository.FindByNames(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if len(categories) < len(normalized) {
		found := make(map[string]bool, len(categories))
		for _, category := range categories {
			found[category.Name] = true
		}
		var missing []string
		for _, n := range normalized {
			if !found[n] {
				missing = append(missing, n)
			}
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoriesNotFound, strings.Join(missing, ", "))
	}

	return categories, nil
}

func toResponse(category *entities.Category) domain.Category {
	return domain.Category{
		ID:   category.ID,
		Name: category.Name,
	}
}
