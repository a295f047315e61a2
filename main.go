package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harshal-sawant/ecommerceStoreBackend/config"
	"github.com/harshal-sawant/ecommerceStoreBackend/database"
	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
	"github.com/harshal-sawant/ecommerceStoreBackend/routes"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	if cfg.JWTKey == "" || cfg.PasswordKey == "" {
		logger.Fatal().Msg("JWT_KEY and PASSWORD_KEY must be set")
	}

	client := database.Connect(cfg.MongoURI)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("MongoDB disconnect failed")
		}
	}()
	db := client.Database(cfg.MongoDB)

	r := gin.New()
	r.Use(middleware.RequestLogger(&logger))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.SetupRoutes(r, db)

	logger.Info().Str("port", cfg.Port).Msg("🚀 Server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}
