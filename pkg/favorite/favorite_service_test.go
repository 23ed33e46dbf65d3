package favorite

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/pkg/recipe"
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
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Favorite{},
	))
	return db
}

func newService(t *testing.T) (FavoriteService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewFavoriteService(NewFavoriteRepository(db), recipe.NewRecipeRepository(db)), db
}

func seedRecipe(t *testing.T, db *gorm.DB, ownerID uint, title string) uint {
	t.Helper()
	rec := &entities.Recipe{
		UserID: ownerID,
		Title:  title,
		Status: entities.RecipeStatusPending,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec.ID
}

func popularity(t *testing.T, db *gorm.DB, recipeID uint) uint {
	t.Helper()
	var rec entities.Recipe
	require.NoError(t, db.First(&rec, recipeID).Error)
	return rec.Popularity
}

func TestAddFavoriteIncrementsPopularity(t *testing.T) {
	service, db := newService(t)
	recipeID := seedRecipe(t, db, 1, "Beef Rendang")

	require.NoError(t, service.AddFavorite(context.Background(), 2, recipeID))

	assert.EqualValues(t, 1, popularity(t, db, recipeID))

	var count int64
	require.NoError(t, db.Model(&entities.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddFavoriteTwiceConflicts(t *testing.T) {
	service, db := newService(t)
	recipeID := seedRecipe(t, db, 1, "Beef Rendang")
	ctx := context.Background()

	require.NoError(t, service.AddFavorite(ctx, 2, recipeID))

	err := service.AddFavorite(ctx, 2, recipeID)
	assert.ErrorIs(t, err, domain.ErrFavoriteExists)

	// the failed second call does not bump the counter
	assert.EqualValues(t, 1, popularity(t, db, recipeID))
}

func TestAddFavoriteOwnRecipeRejected(t *testing.T) {
	service, db := newService(t)
	recipeID := seedRecipe(t, db, 1, "Beef Rendang")

	err := service.AddFavorite(context.Background(), 1, recipeID)
	assert.ErrorIs(t, err, domain.ErrOwnFavorite)

	assert.EqualValues(t, 0, popularity(t, db, recipeID))

	var count int64
	require.NoError(t, db.Model(&entities.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAddFavoriteUnknownRecipe(t *testing.T) {
	service, _ := newService(t)

	err := service.AddFavorite(context.Background(), 2, 999)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRemoveFavoriteKeepsPopularity(t *testing.T) {
	service, db := newService(t)
	recipeID := seedRecipe(t, db, 1, "Beef Rendang")
	ctx := context.Background()

	require.NoError(t, service.AddFavorite(ctx, 2, recipeID))
	require.NoError(t, service.RemoveFavorite(ctx, 2, recipeID))

	// popularity counts lifetime favorite events
	assert.EqualValues(t, 1, popularity(t, db, recipeID))

	var count int64
	require.NoError(t, db.Model(&entities.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRemoveFavoriteAbsentRow(t *testing.T) {
	service, db := newService(t)
	recipeID := seedRecipe(t, db, 1, "Beef Rendang")

	err := service.RemoveFavorite(context.Background(), 2, recipeID)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}

func TestExists(t *testing.T) {
	service, db := newService(t)
	recipeID := seedRecipe(t, db, 1, "Beef Rendang")
	ctx := context.Background()

	exists, err := service.Exists(ctx, 2, recipeID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, service.AddFavorite(ctx, 2, recipeID))

	exists, err = service.Exists(ctx, 2, recipeID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = service.Exists(ctx, 2, 999)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetFavorites(t *testing.T) {
	service, db := newService(t)
	first := seedRecipe(t, db, 1, "Beef Rendang")
	second := seedRecipe(t, db, 1, "Nasi Goreng")
	ctx := context.Background()

	require.NoError(t, service.AddFavorite(ctx, 2, first))
	require.NoError(t, service.AddFavorite(ctx, 2, second))

	favorites, err := service.GetFavorites(ctx, 2)
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	titles := []string{favorites[0].Title, favorites[1].Title}
	assert.ElementsMatch(t, []string{"Beef Rendang", "Nasi Goreng"}, titles)
}
