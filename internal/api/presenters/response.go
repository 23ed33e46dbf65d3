package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Api-Recipes/domain"
)

type (
	Response struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
	}

	ErrorBody struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse resolves the error code and HTTP status from the error
// itself. The caller's status is used only when the error is not a known
// sentinel.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	code, mappedStatus := classify(err)
	if mappedStatus != 0 {
		status = mappedStatus
	}
	if code == "" {
		code = codeForStatus(status)
	}

	body := ErrorBody{ErrorCode: code, Message: message}
	if err != nil {
		body.Message = err.Error()
	}
	return c.Status(status).JSON(body)
}

func classify(err error) (string, int) {
	if err == nil {
		return "", 0
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return domain.CodeInvalidRequest, fiber.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCategoriesNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return domain.CodeResourceNotFound, fiber.StatusNotFound

	case errors.Is(err, domain.ErrRecipeTitleExists),
		errors.Is(err, domain.ErrCategoryExists),
		errors.Is(err, domain.ErrIngredientExists),
		errors.Is(err, domain.ErrFavoriteExists),
		errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrUsernameExists):
		return domain.CodeConflict, fiber.StatusConflict

	case errors.Is(err, domain.ErrDuplicateIngredient),
		errors.Is(err, domain.ErrOwnFavorite),
		errors.Is(err, domain.ErrIngredientInUse),
		errors.Is(err, domain.ErrInvalidUnitMeasure),
		errors.Is(err, domain.ErrEmptyCategoryName),
		errors.Is(err, domain.ErrEmptyImage),
		errors.Is(err, domain.ErrPasswordSame),
		errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrParseID):
		return domain.CodeInvalidRequest, fiber.StatusBadRequest

	case errors.Is(err, domain.ErrAccessDenied),
		errors.Is(err, domain.ErrUserNotAllowed):
		return domain.CodeAccessDenied, fiber.StatusForbidden

	case errors.Is(err, domain.ErrTokenExpired):
		return domain.CodeExpiredToken, fiber.StatusBadRequest

	case errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return domain.CodeInvalidToken, fiber.StatusBadRequest
	}

	return "", 0
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return domain.CodeResourceNotFound
	case fiber.StatusConflict:
		return domain.CodeConflict
	case fiber.StatusForbidden:
		return domain.CodeAccessDenied
	case fiber.StatusBadRequest:
		return domain.CodeInvalidRequest
	default:
		return domain.CodeInternalError
	}
}
