package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes is the single entry point that wires up every route group
// under /api.
func SetupRoutes(r *gin.Engine, db *mongo.Database) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupUserRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db)
}
