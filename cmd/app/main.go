package main

import (
	"Restaurant-Management-Backend/cmd/config"
	"Restaurant-Management-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to document store: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}

	log.Infof("server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
