package routes

import (
	"Api-Recipes/internal/api/handlers"
	"Api-Recipes/internal/middleware"
	"Api-Recipes/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	IngredientHandler handlers.IngredientHandler
	FavoriteHandler   handlers.FavoriteHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Categories()
	c.Ingredients()
	c.Favorites()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Delete("/delete", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Patch("/email", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ChangeEmail)
		user.Patch("/password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ChangePassword)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/mine", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetMyRecipes)
	recipes.Get("/title/:title", c.RecipeHandler.GetRecipeByTitle)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)

	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")

	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.CategoryHandler.GetCategoryDetail)

	admin := c.Middleware.AuthMiddleware(c.JWTService)
	onlyAdmin := c.Middleware.OnlyAdmin(c.JWTService)
	categories.Post("", admin, onlyAdmin, c.CategoryHandler.CreateCategory)
	categories.Put("/:id", admin, onlyAdmin, c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", admin, onlyAdmin, c.CategoryHandler.DeleteCategory)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")

	ingredients.Get("", c.IngredientHandler.SearchIngredients)

	admin := c.Middleware.AuthMiddleware(c.JWTService)
	onlyAdmin := c.Middleware.OnlyAdmin(c.JWTService)
	ingredients.Get("/all", admin, onlyAdmin, c.IngredientHandler.GetAllIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetail)
	ingredients.Post("", admin, onlyAdmin, c.IngredientHandler.CreateIngredient)
	ingredients.Put("/:id", admin, onlyAdmin, c.IngredientHandler.UpdateIngredient)
	ingredients.Patch("/:id/enable", admin, onlyAdmin, c.IngredientHandler.EnableIngredient)
	ingredients.Patch("/:id/disable", admin, onlyAdmin, c.IngredientHandler.DisableIngredient)
	ingredients.Post("/:id/image", admin, onlyAdmin, c.IngredientHandler.UploadIngredientImage)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites", c.Middleware.AuthMiddleware(c.JWTService))

	favorites.Get("", c.FavoriteHandler.GetFavorites)
	favorites.Post("/:id", c.FavoriteHandler.AddFavorite)
	favorites.Delete("/:id", c.FavoriteHandler.RemoveFavorite)
	favorites.Get("/:id", c.FavoriteHandler.CheckFavorite)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
