package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	orderControllers "github.com/harshal-sawant/ecommerceStoreBackend/controllers/order"
	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
)

// SetupOrderRoutes registers the /api/orders endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *mongo.Database) {
	orders := api.Group("/orders")
	{
		orders.POST("", middleware.ValidateToken, orderControllers.CreateOrder(db))
		orders.GET("", middleware.AdminAuth, orderControllers.GetOrders(db))
		orders.GET("/user", middleware.ValidateToken, orderControllers.GetUserOrders(db))
		orders.GET("/:id", middleware.ValidateToken, orderControllers.GetOrder(db))
		orders.PUT("/:id", middleware.AdminAuth, orderControllers.UpdateOrderStatus(db))
		orders.DELETE("/:id", middleware.AdminAuth, orderControllers.DeleteOrder(db))
	}
}
