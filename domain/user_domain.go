package domain

import "errors"

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessGetProfile     = "success get profile"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessDeleteUser     = "user deleted successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessChangeEmail    = "email changed successfully"
	MessageSuccessChangePassword = "password changed successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to get profile"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedDeleteUser     = "failed to delete user"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedChangeEmail    = "failed to change email"
	MessageFailedChangePassword = "failed to change password"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrPasswordSame       = errors.New("new password must differ from the old one")
)

type (
	UserRegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=20"`
		Email    string `json:"email" validate:"required,email,max=50"`
		Password string `json:"password" validate:"required,min=8,max=64"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserUpdateRequest struct {
		Username string `json:"username" validate:"omitempty,min=3,max=20"`
		Email    string `json:"email" validate:"omitempty,email,max=50"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8,max=64"`
	}

	ChangeEmailRequest struct {
		Email    string `json:"email" validate:"required,email,max=50"`
		Password string `json:"password" validate:"required"`
	}

	ChangePasswordRequest struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8,max=64"`
	}

	UserResponse struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	UserLoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
