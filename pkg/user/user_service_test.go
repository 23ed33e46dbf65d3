package user

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/pkg/jwt"
	"Api-Recipes/pkg/uniqueness"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeMailer struct {
	sentTo   []string
	subjects []string
	bodies   []string
}

func (m *fakeMailer) Send(toEmail string, subject string, body string) error {
	m.sentTo = append(m.sentTo, toEmail)
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, body)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.PasswordResetToken{},
		&entities.Category{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Favorite{},
	))
	return db
}

func newService(t *testing.T) (UserService, *gorm.DB, *fakeMailer) {
	t.Helper()
	db := setupTestDB(t)
	mailer := &fakeMailer{}
	service := NewUserService(
		NewUserRepository(db),
		jwt.NewJWTService(),
		uniqueness.NewValidator(db),
		mailer,
	)
	return service, db, mailer
}

func register(t *testing.T, service UserService) domain.UserResponse {
	t.Helper()
	res, err := service.Register(context.Background(), domain.UserRegisterRequest{
		Username: "cook",
		Email:    "cook@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	return res
}

func TestRegisterHashesPasswordAndAssignsRole(t *testing.T) {
	service, db, _ := newService(t)

	res := register(t, service)
	assert.Equal(t, domain.RoleUser, res.Role)

	var stored entities.User
	require.NoError(t, db.First(&stored, res.ID).Error)
	assert.NotEqual(t, "secret-password", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-password")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service, _, _ := newService(t)
	register(t, service)

	_, err := service.Register(context.Background(), domain.UserRegisterRequest{
		Username: "cook",
		Email:    "other@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	service, _, _ := newService(t)
	register(t, service)

	_, err := service.Register(context.Background(), domain.UserRegisterRequest{
		Username: "othercook",
		Email:    "COOK@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	service, _, _ := newService(t)
	register(t, service)
	ctx := context.Background()

	res, err := service.Login(ctx, domain.UserLoginRequest{
		Email:    "cook@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "cook", res.User.Username)

	_, err = service.Login(ctx, domain.UserLoginRequest{
		Email:    "cook@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(ctx, domain.UserLoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestUpdateUserUniqueness(t *testing.T) {
	service, _, _ := newService(t)
	first := register(t, service)
	ctx := context.Background()

	_, err := service.Register(ctx, domain.UserRegisterRequest{
		Username: "baker",
		Email:    "baker@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	// keeping your own username is fine
	res, err := service.UpdateUser(ctx, first.ID, domain.UserUpdateRequest{Username: "cook"})
	require.NoError(t, err)
	assert.Equal(t, "cook", res.Username)

	_, err = service.UpdateUser(ctx, first.ID, domain.UserUpdateRequest{Username: "baker"})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)

	_, err = service.UpdateUser(ctx, first.ID, domain.UserUpdateRequest{Email: "BAKER@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestDeleteUserRemovesRelations(t *testing.T) {
	service, db, _ := newService(t)
	owner := register(t, service)

	rec := &entities.Recipe{UserID: owner.ID, Title: "Beef Rendang", Status: entities.RecipeStatusPending}
	require.NoError(t, db.Create(rec).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: rec.ID, IngredientID: 10, Quantity: 2.0}).Error)
	require.NoError(t, db.Create(&entities.Favorite{UserID: 99, RecipeID: rec.ID}).Error)
	require.NoError(t, db.Create(&entities.Favorite{UserID: owner.ID, RecipeID: 500}).Error)

	require.NoError(t, service.DeleteUser(context.Background(), owner.ID))

	var users, recipes, joins, favorites int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&joins).Error)
	require.NoError(t, db.Model(&entities.Favorite{}).Count(&favorites).Error)
	assert.EqualValues(t, 0, users)
	assert.EqualValues(t, 0, recipes)
	assert.EqualValues(t, 0, joins)
	assert.EqualValues(t, 0, favorites)
}

func TestForgotPasswordKeepsOneTokenPerUser(t *testing.T) {
	service, db, mailer := newService(t)
	owner := register(t, service)
	ctx := context.Background()

	req := domain.ForgotPasswordRequest{Email: "cook@example.com"}
	require.NoError(t, service.ForgotPassword(ctx, req))
	require.NoError(t, service.ForgotPassword(ctx, req))

	var count int64
	require.NoError(t, db.Model(&entities.PasswordResetToken{}).
		Where("user_id = ?", owner.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.Len(t, mailer.sentTo, 2)
	assert.Equal(t, "cook@example.com", mailer.sentTo[0])
	assert.Contains(t, mailer.bodies[1], "reset-password?token=")

	err := service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestResetPassword(t *testing.T) {
	service, db, _ := newService(t)
	owner := register(t, service)
	ctx := context.Background()

	require.NoError(t, service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "cook@example.com"}))

	var token entities.PasswordResetToken
	require.NoError(t, db.Where("user_id = ?", owner.ID).First(&token).Error)

	err := service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:    token.Token,
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordSame)

	require.NoError(t, service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:    token.Token,
		Password: "brand-new-password",
	}))

	_, err = service.Login(ctx, domain.UserLoginRequest{
		Email:    "cook@example.com",
		Password: "brand-new-password",
	})
	assert.NoError(t, err)

	// the token is single use
	err = service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:    token.Token,
		Password: "yet-another-password",
	})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestChangeEmail(t *testing.T) {
	service, _, _ := newService(t)
	owner := register(t, service)
	ctx := context.Background()

	_, err := service.ChangeEmail(ctx, owner.ID, domain.ChangeEmailRequest{
		Email:    "new@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Register(ctx, domain.UserRegisterRequest{
		Username: "baker",
		Email:    "baker@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = service.ChangeEmail(ctx, owner.ID, domain.ChangeEmailRequest{
		Email:    "BAKER@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	res, err := service.ChangeEmail(ctx, owner.ID, domain.ChangeEmailRequest{
		Email:    "new@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", res.Email)

	_, err = service.Login(ctx, domain.UserLoginRequest{
		Email:    "new@example.com",
		Password: "secret-password",
	})
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	service, _, _ := newService(t)
	owner := register(t, service)
	ctx := context.Background()

	err := service.ChangePassword(ctx, owner.ID, domain.ChangePasswordRequest{
		OldPassword: "wrong-password",
		NewPassword: "brand-new-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	err = service.ChangePassword(ctx, owner.ID, domain.ChangePasswordRequest{
		OldPassword: "secret-password",
		NewPassword: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordSame)

	require.NoError(t, service.ChangePassword(ctx, owner.ID, domain.ChangePasswordRequest{
		OldPassword: "secret-password",
		NewPassword: "brand-new-password",
	}))

	_, err = service.Login(ctx, domain.UserLoginRequest{
		Email:    "cook@example.com",
		Password: "brand-new-password",
	})
	assert.NoError(t, err)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	service, db, _ := newService(t)
	owner := register(t, service)
	ctx := context.Background()

	token := &entities.PasswordResetToken{
		Token:     "expired-token",
		UserID:    owner.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(token).Error)

	err := service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:    "expired-token",
		Password: "brand-new-password",
	})
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	var count int64
	require.NoError(t, db.Model(&entities.PasswordResetToken{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
