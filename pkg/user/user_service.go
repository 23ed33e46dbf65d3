package user

import (
	"Api-Recipes/domain"
	"Api-Recipes/entities"
	"Api-Recipes/internal/utils"
	"Api-Recipes/internal/utils/mailing"
	"Api-Recipes/pkg/jwt"
	"Api-Recipes/pkg/uniqueness"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 24 * time.Hour

var (
	usernameKey = uniqueness.Key{
		Model:     &entities.User{},
		Column:    "username",
		Collation: uniqueness.CollationExact,
	}
	emailKey = uniqueness.Key{
		Model:     &entities.User{},
		Column:    "email",
		Collation: uniqueness.CollationFoldCase,
	}
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID uint, req domain.UserUpdateRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, userID uint) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		ChangeEmail(ctx context.Context, userID uint, req domain.ChangeEmailRequest) (domain.UserResponse, error)
		ChangePassword(ctx context.Context, userID uint, req domain.ChangePasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		uniqueness     uniqueness.Validator
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, uniquenessValidator uniqueness.Validator, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		uniqueness:     uniquenessValidator,
		mailer:         mailer,
	}
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	taken, err := s.uniqueness.IsTaken(ctx, usernameKey, username)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if taken {
		return domain.UserResponse{}, domain.ErrUsernameExists
	}

	taken, err = s.uniqueness.IsTaken(ctx, emailKey, email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if taken {
		return domain.UserResponse{}, domain.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.UserLoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID, user.Role)
	return domain.UserLoginResponse{
		Token: token,
		User:  toResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID uint, req domain.UserUpdateRequest) (domain.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if username := strings.TrimSpace(req.Username); username != "" {
		taken, err := s.uniqueness.IsTakenExcluding(ctx, usernameKey, username, userID)
		if err != nil {
			return domain.UserResponse{}, err
		}
		if taken {
			return domain.UserResponse{}, domain.ErrUsernameExists
		}
		user.Username = username
	}

	if email := strings.TrimSpace(req.Email); email != "" {
		taken, err := s.uniqueness.IsTakenExcluding(ctx, emailKey, email, userID)
		if err != nil {
			return domain.UserResponse{}, err
		}
		if taken {
			return domain.UserResponse{}, domain.ErrEmailExists
		}
		user.Email = email
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID uint) error {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return err
	}
	return s.userRepository.DeleteUserWithRelations(ctx, userID)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token := &entities.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.userRepository.SaveResetToken(ctx, token); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token.Token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Use the link below to reset your password. It expires in 24 hours.</p><p><a href=%q>Reset password</a></p>",
		user.Username, resetLink,
	)
	return s.mailer.Send(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	token, err := s.userRepository.GetResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTokenInvalid
		}
		return err
	}

	if token.IsExpired() {
		_ = s.userRepository.DeleteResetToken(ctx, token.ID)
		return domain.ErrTokenExpired
	}

	user, err := s.loadUser(ctx, token.UserID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) == nil {
		return domain.ErrPasswordSame
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}
	return s.userRepository.DeleteResetToken(ctx, token.ID)
}

func (s *userService) ChangeEmail(ctx context.Context, userID uint, req domain.ChangeEmailRequest) (domain.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.UserResponse{}, domain.ErrCredentialsInvalid
	}

	email := strings.TrimSpace(req.Email)
	taken, err := s.uniqueness.IsTakenExcluding(ctx, emailKey, email, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if taken {
		return domain.UserResponse{}, domain.ErrEmailExists
	}

	user.Email = email
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toResponse(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uint, req domain.ChangePasswordRequest) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return domain.ErrCredentialsInvalid
	}

	if req.NewPassword == req.OldPassword {
		return domain.ErrPasswordSame
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) loadUser(ctx context.Context, userID uint) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func toResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
