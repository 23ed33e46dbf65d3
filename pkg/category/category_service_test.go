package category

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/pkg/uniqueness"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Category{}, &entities.Recipe{}))
	return db
}

func newService(t *testing.T) (CategoryService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewCategoryService(NewCategoryRepository(db), uniqueness.NewValidator(db)), db
}

func TestCreateCategoryNormalizesName(t *testing.T) {
	service, _ := newService(t)

	res, err := service.CreateCategory(context.Background(), domain.CategoryRequest{Name: "  dessert "})
	require.NoError(t, err)
	assert.Equal(t, "DESSERT", res.Name)
}

func TestCreateCategoryCaseInsensitiveConflict(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	require.NoError(t, err)

	_, err = service.CreateCategory(ctx, domain.CategoryRequest{Name: "dessert"})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)
}

func TestCreateCategoryEmptyName(t *testing.T) {
	service, _ := newService(t)

	_, err := service.CreateCategory(context.Background(), domain.CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyCategoryName)
}

func TestUpdateCategory(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	require.NoError(t, err)

	// keeping its own name is fine
	_, err = service.UpdateCategory(ctx, created.ID, domain.CategoryRequest{Name: "DESSERT"})
	require.NoError(t, err)

	other, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Breakfast"})
	require.NoError(t, err)

	_, err = service.UpdateCategory(ctx, other.ID, domain.CategoryRequest{Name: "dessert"})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)

	_, err = service.UpdateCategory(ctx, 999, domain.CategoryRequest{Name: "Lunch"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()

	created, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCategory(ctx, created.ID))

	var count int64
	require.NoError(t, db.Model(&entities.Category{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	assert.ErrorIs(t, service.DeleteCategory(ctx, created.ID), domain.ErrCategoryNotFound)
}

func TestResolveByNames(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	require.NoError(t, err)
	_, err = service.CreateCategory(ctx, domain.CategoryRequest{Name: "Breakfast"})
	require.NoError(t, err)

	resolved, err := service.ResolveByNames(ctx, []string{"dessert", " BREAKFAST "})
	require.NoError(t, err)
	assert.Len(t, resolved, 2)

	// duplicates collapse after normalization
	resolved, err = service.ResolveByNames(ctx, []string{"dessert", "Dessert"})
	require.NoError(t, err)
	assert.Len(t, resolved, 1)

	resolved, err = service.ResolveByNames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveByNamesListsEveryMissingName(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	require.NoError(t, err)

	_, err = service.ResolveByNames(ctx, []string{"Dessert", "Lunch", "Brunch"})
	require.ErrorIs(t, err, domain.ErrCategoriesNotFound)
	assert.Contains(t, err.Error(), "LUNCH")
	assert.Contains(t, err.Error(), "BRUNCH")
	assert.NotContains(t, err.Error(), "DESSERT")
}
