package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	ServerAddr   string
	ClientOrigin string
}

func LoadConfig() Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return Config{
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		ServerAddr:   getEnv("SERVER_ADDR", ":8000"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
