package config

import (
	"Api-Recipes/internal/api/handlers"
	"Api-Recipes/internal/api/routes"
	"Api-Recipes/internal/middleware"
	"Api-Recipes/internal/utils"
	"Api-Recipes/internal/utils/mailing"
	"Api-Recipes/internal/utils/storage"
	"Api-Recipes/pkg/category"
	"Api-Recipes/pkg/favorite"
	"Api-Recipes/pkg/ingredient"
	"Api-Recipes/pkg/jwt"
	"Api-Recipes/pkg/recipe"
	"Api-Recipes/pkg/uniqueness"
	"Api-Recipes/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewSMTPMailer()
	uniquenessValidator := uniqueness.NewValidator(db)

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, uniquenessValidator, mailer)
	categoryService := category.NewCategoryService(categoryRepository, uniquenessValidator)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, uniquenessValidator, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository, categoryService, uniquenessValidator, s3)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		IngredientHandler: ingredientHandler,
		FavoriteHandler:   favoriteHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
