package ingredient

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/pkg/uniqueness"
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeS3 struct{}

func (f *fakeS3) UploadFile(file *multipart.FileHeader, directory string, contentTypes ...string) (string, error) {
	return directory + "/test-key", nil
}
func (f *fakeS3) DeleteFile(key string) error        { return nil }
func (f *fakeS3) DeleteByURL(url string) error       { return nil }
func (f *fakeS3) GetPublicLinkKey(key string) string { return "https://cdn.test/" + key }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Ingredient{}, &entities.Recipe{}, &entities.RecipeIngredient{}))
	return db
}

func newService(t *testing.T) (IngredientService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewIngredientService(NewIngredientRepository(db), uniqueness.NewValidator(db), &fakeS3{}), db
}

func TestCreateIngredientNormalizesAndStartsActive(t *testing.T) {
	service, _ := newService(t)

	res, err := service.CreateIngredient(context.Background(), domain.IngredientRequest{
		Name:        "  beef ",
		UnitMeasure: entities.UnitGrams,
	})
	require.NoError(t, err)
	assert.Equal(t, "BEEF", res.Name)
	assert.True(t, res.Active)
}

func TestCreateIngredientInvalidUnit(t *testing.T) {
	service, _ := newService(t)

	_, err := service.CreateIngredient(context.Background(), domain.IngredientRequest{
		Name:        "Beef",
		UnitMeasure: "POUNDS",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidUnitMeasure)
}

func TestCreateIngredientCaseInsensitiveConflict(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Beef", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)

	_, err = service.CreateIngredient(ctx, domain.IngredientRequest{Name: "beef", UnitMeasure: entities.UnitGrams})
	assert.ErrorIs(t, err, domain.ErrIngredientExists)
}

func TestDisableIngredientInUseRejected(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()

	created, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Beef", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)

	rec := &entities.Recipe{UserID: 1, Title: "Beef Rendang", Status: entities.RecipeStatusPending}
	require.NoError(t, db.Create(rec).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{
		RecipeID:     rec.ID,
		IngredientID: created.ID,
		Quantity:     2.0,
	}).Error)

	err = service.DisableIngredient(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrIngredientInUse)

	got, err := service.GetIngredient(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
}

func TestDisableAndEnableIngredient(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Beef", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)

	require.NoError(t, service.DisableIngredient(ctx, created.ID))

	got, err := service.GetIngredient(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.NoError(t, service.EnableIngredient(ctx, created.ID))

	got, err = service.GetIngredient(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
}

func TestSearchIngredientsReturnsActiveOnly(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Beef", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)
	disabled, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Beet", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)
	require.NoError(t, service.DisableIngredient(ctx, disabled.ID))

	results, err := service.SearchIngredients(ctx, "bee")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "BEEF", results[0].Name)
}

func TestGetAllIngredientsIncludesDisabled(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Beef", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)
	disabled, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Beet", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)
	require.NoError(t, service.DisableIngredient(ctx, disabled.ID))

	results, err := service.GetAllIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestUpdateIngredient(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Beef", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)
	other, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: "Chili", UnitMeasure: entities.UnitGrams})
	require.NoError(t, err)

	updated, err := service.UpdateIngredient(ctx, created.ID, domain.IngredientRequest{
		Name:        "Beef Brisket",
		UnitMeasure: entities.UnitGrams,
	})
	require.NoError(t, err)
	assert.Equal(t, "BEEF BRISKET", updated.Name)

	_, err = service.UpdateIngredient(ctx, other.ID, domain.IngredientRequest{
		Name:        "beef brisket",
		UnitMeasure: entities.UnitGrams,
	})
	assert.ErrorIs(t, err, domain.ErrIngredientExists)

	_, err = service.UpdateIngredient(ctx, 999, domain.IngredientRequest{
		Name:        "Garlic",
		UnitMeasure: entities.UnitGrams,
	})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
