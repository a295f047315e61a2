package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	cartControllers "github.com/harshal-sawant/ecommerceStoreBackend/controllers/cart"
	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
)

// SetupCartRoutes registers the /api/carts endpoints. All of them operate
// on the authenticated user's own cart.
func SetupCartRoutes(api *gin.RouterGroup, db *mongo.Database) {
	carts := api.Group("/carts")
	carts.Use(middleware.ValidateToken)
	{
		carts.POST("/add", cartControllers.AddItemToCart(db))
		carts.GET("/get", cartControllers.GetCart(db))
		carts.POST("/decrease", cartControllers.DecreaseQuantity(db))
		carts.POST("/remove", cartControllers.RemoveItem(db))
		carts.DELETE("/delete", cartControllers.DeleteCart(db))
	}
}
