package db

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file (optional in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Get the store path from environment
	path := os.Getenv("ARTIFACTS_DB")
	if path == "" {
		path = "artifacts.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Println("Error opening the artifacts store:", err)
		return nil, err
	}

	log.Println("Artifacts store connected successfully!")

	return db, nil
}
