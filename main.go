package main

import (
	"log"
	"os"

	"github.com/HAExplorer/HAExplorer-Backend/src/db"
	"github.com/HAExplorer/HAExplorer-Backend/src/middleware"
	"github.com/HAExplorer/HAExplorer-Backend/src/models"
	"github.com/HAExplorer/HAExplorer-Backend/src/routes"
	"github.com/HAExplorer/HAExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models (idempotent, runs on every start)
	if err := db.AutoMigrate(&models.ArtifactMetadata{}, &models.ArtifactMedia{}, &models.ArtifactColor{}); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	harvardService, err := services.NewHarvardService()
	if err != nil {
		log.Fatalf("Error configuring museum API client: %v\n", err)
	}
	ingestService := services.NewIngestService(db, harvardService)
	queryService := services.NewQueryService(db)

	// Routes setup
	routes.SetupIngestRoutes(router, ingestService)
	routes.SetupQueryRoutes(router, queryService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Harvard Artifacts Explorer API")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}

}
