package config

import (
	"os"

	"Restaurant-Management-Backend/internal/api/handlers"
	"Restaurant-Management-Backend/internal/api/routes"
	"Restaurant-Management-Backend/internal/middleware"
	"Restaurant-Management-Backend/internal/utils"
	"Restaurant-Management-Backend/internal/utils/mailing"
	"Restaurant-Management-Backend/internal/utils/storage"
	"Restaurant-Management-Backend/pkg/food"
	"Restaurant-Management-Backend/pkg/gallery"
	"Restaurant-Management-Backend/pkg/jwt"
	"Restaurant-Management-Backend/pkg/purchase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewApp(db *mongo.Database) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
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

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	foodRepository := food.NewFoodRepository(db)
	purchaseRepository := purchase.NewPurchaseRepository(db)
	galleryRepository := gallery.NewGalleryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	foodService := food.NewFoodService(foodRepository)
	purchaseService := purchase.NewPurchaseService(purchaseRepository, foodRepository, mailer)
	galleryService := gallery.NewGalleryService(galleryRepository, s3)

	// Handler
	authHandler := handlers.NewAuthHandler(jwtService, validator)
	foodHandler := handlers.NewFoodHandler(foodService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	galleryHandler := handlers.NewGalleryHandler(galleryService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		AuthHandler:     authHandler,
		FoodHandler:     foodHandler,
		PurchaseHandler: purchaseHandler,
		GalleryHandler:  galleryHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
