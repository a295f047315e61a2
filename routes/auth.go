package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	authControllers "github.com/harshal-sawant/ecommerceStoreBackend/controllers/auth"
)

// SetupAuthRoutes registers the public /api/auth endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *mongo.Database) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
	}
}
