package uniqueness

import (
	"Api-Recipes/entities"
	"context"
	"fmt"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&entities.Recipe{}, &entities.Category{}))
	return db
}

func TestIsTakenExactCollation(t *testing.T) {
	db := setupTestDB(t)
	v := NewValidator(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&entities.Recipe{UserID: 1, Title: "Beef Rendang", Status: entities.RecipeStatusPending}).Error)

	key := Key{Model: &entities.Recipe{}, Column: "title", Collation: CollationExact}

	taken, err := v.IsTaken(ctx, key, "Beef Rendang")
	require.NoError(t, err)
	require.True(t, taken)

	// exact match is case-sensitive
	taken, err = v.IsTaken(ctx, key, "beef rendang")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestIsTakenFoldCaseCollation(t *testing.T) {
	db := setupTestDB(t)
	v := NewValidator(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&entities.Category{Name: "DESSERT"}).Error)

	key := Key{Model: &entities.Category{}, Column: "name", Collation: CollationFoldCase}

	taken, err := v.IsTaken(ctx, key, "dessert")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = v.IsTaken(ctx, key, "Dessert")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = v.IsTaken(ctx, key, "BREAKFAST")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestIsTakenExcludingOwnID(t *testing.T) {
	db := setupTestDB(t)
	v := NewValidator(db)
	ctx := context.Background()

	recipe := &entities.Recipe{UserID: 1, Title: "Soto Ayam", Status: entities.RecipeStatusPending}
	require.NoError(t, db.Create(recipe).Error)

	key := Key{Model: &entities.Recipe{}, Column: "title", Collation: CollationExact}

	taken, err := v.IsTakenExcluding(ctx, key, "Soto Ayam", recipe.ID)
	require.NoError(t, err)
	require.False(t, taken)

	other := &entities.Recipe{UserID: 2, Title: "Nasi Goreng", Status: entities.RecipeStatusPending}
	require.NoError(t, db.Create(other).Error)

	taken, err = v.IsTakenExcluding(ctx, key, "Soto Ayam", other.ID)
	require.NoError(t, err)
	require.True(t, taken)
}
