package handlers

import (
	"Api-Recipes/domain"
	"Api-Recipes/internal/api/presenters"
	"Api-Recipes/pkg/favorite"

	"github.com/gofiber/fiber/v2"
)

type (
	FavoriteHandler interface {
		GetFavorites(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		CheckFavorite(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService) FavoriteHandler {
	return &favoriteHandler{favoriteService: favoriteService}
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	res, err := h.favoriteService.GetFavorites(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	recipeID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, domain.ErrParseID)
	}

	if err := h.favoriteService.AddFavorite(c.Context(), userID, recipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *favoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	recipeID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFavorite, domain.ErrParseID)
	}

	if err := h.favoriteService.RemoveFavorite(c.Context(), userID, recipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *favoriteHandler) CheckFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	recipeID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckFavorite, domain.ErrParseID)
	}

	exists, err := h.favoriteService.Exists(c.Context(), userID, recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckFavorite, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"favorited": exists}, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}
