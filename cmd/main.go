package main

import (
	"log"

	"deskfit/config"
	"deskfit/controllers"
	"deskfit/routes"
	"deskfit/services"

	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	config.InitDB()
	controllers.Init(logger)

	catalog := services.NewCatalogService(config.DB, logger)
	if err := catalog.LoadFile(config.Getenv("CATALOG_PATH", "calories.csv")); err != nil {
		// A partial or missing catalog is not fatal; users can still
		// log foods with their own rates.
		logger.Warn("food catalog load incomplete", zap.Error(err))
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + config.Getenv("PORT", "8080")); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
