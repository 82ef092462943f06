package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
}

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

// Load builds the Config from the environment with fallbacks.
func Load() Config {
	return Config{
		Port:         GetEnv("PORT", "8000"),
		MongoURI:     GetEnv("MONGODB_URI", ""),
		DatabaseName: GetEnv("DATABASE_NAME", "mcalger"),
	}
}

// GetEnv retrieves environment variables with a fallback
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
