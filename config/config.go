package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDB     string
	JWTKey      string
	PasswordKey string
	Port        string
}

// Load reads configuration from the environment. A local .env file is
// loaded first when present so the service can run outside a container.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		}
	}

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "ecommerceStore"),
		JWTKey:      getEnv("JWT_KEY", ""),
		PasswordKey: getEnv("PASSWORD_KEY", ""),
		Port:        getEnv("PORT", "5050"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
