package routes

import (
	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/internal/api/handlers"
	"Restaurant-Management-Backend/internal/middleware"
	"Restaurant-Management-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	AuthHandler     handlers.AuthHandler
	FoodHandler     handlers.FoodHandler
	PurchaseHandler handlers.PurchaseHandler
	GalleryHandler  handlers.GalleryHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Foods()
	c.Purchases()
	c.Gallery()
	c.Root()
}

func (c *Config) Auth() {
	c.App.Post("/jwt", c.AuthHandler.IssueToken)
	c.App.Post("/logout", c.AuthHandler.Logout)
}

func (c *Config) Foods() {
	c.App.Post("/foods", c.FoodHandler.AddFood)
	c.App.Get("/foods", c.FoodHandler.GetFoods)
	c.App.Get("/top-selling-foods", c.FoodHandler.GetTopSellingFoods)
	// The owner route must be registered before the name wildcard so
	// /foods/user/... is not captured as a name search.
	c.App.Get("/foods/user/:email",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireOwnEmail(),
		c.FoodHandler.GetFoodsByOwner,
	)
	c.App.Get("/foods/:name", c.FoodHandler.SearchFoodsByName)
	c.App.Get("/food/:id", c.FoodHandler.GetFoodByID)
	c.App.Patch("/update/:id", c.FoodHandler.UpdateFood)
}

func (c *Config) Purchases() {
	c.App.Post("/purchase/:id", c.PurchaseHandler.PlaceOrder)
	c.App.Get("/purchase/:email",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireOwnEmail(),
		c.PurchaseHandler.GetPurchasesByBuyer,
	)
	c.App.Delete("/purchase/delete/:id", c.PurchaseHandler.DeletePurchase)
}

func (c *Config) Gallery() {
	c.App.Post("/gallery", c.GalleryHandler.AddPost)
	c.App.Get("/gallery", c.GalleryHandler.GetPosts)
	c.App.Post("/gallery/image", c.GalleryHandler.UploadImage)
}

func (c *Config) Root() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(domain.MessageServerRunning)
	})
}
