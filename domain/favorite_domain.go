package domain

import "errors"

var (
	MessageSuccessGetFavorites   = "success get favorites"
	MessageSuccessAddFavorite    = "recipe added to favorites"
	MessageSuccessRemoveFavorite = "recipe removed from favorites"

	MessageFailedGetFavorites   = "failed to get favorites"
	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
	MessageFailedCheckFavorite  = "failed to check favorite"

	ErrFavoriteNotFound = errors.New("recipe is not in favorites")
	ErrFavoriteExists   = errors.New("recipe is already in favorites")
	ErrOwnFavorite      = errors.New("cannot favorite your own recipe")
)

type Favorite struct {
	ID       uint   `json:"id"`
	RecipeID uint   `json:"recipe_id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url,omitempty"`
}
