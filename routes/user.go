package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	userControllers "github.com/harshal-sawant/ecommerceStoreBackend/controllers/user"
	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
)

// SetupUserRoutes registers the /api/users endpoints. Profile CRUD is
// owner-or-admin; the listing is admin only.
func SetupUserRoutes(api *gin.RouterGroup, db *mongo.Database) {
	users := api.Group("/users")
	{
		users.GET("", middleware.AdminAuth, userControllers.GetUsers(db))
		users.GET("/wishlist", middleware.ValidateToken, userControllers.GetWishlist(db))
		users.POST("/address", middleware.ValidateToken, userControllers.SaveAddress(db))

		users.GET("/:id", middleware.ValidateTokenAndAuth, userControllers.GetUser(db))
		users.PUT("/:id", middleware.ValidateTokenAndAuth, userControllers.UpdateUser(db))
		users.DELETE("/:id", middleware.ValidateTokenAndAuth, userControllers.DeleteUser(db))
	}
}
