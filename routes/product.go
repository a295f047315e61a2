package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	productControllers "github.com/harshal-sawant/ecommerceStoreBackend/controllers/product"
	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
)

// SetupProductRoutes registers the /api/products endpoints. Catalog reads
// are public; mutations require the admin role.
func SetupProductRoutes(api *gin.RouterGroup, db *mongo.Database) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/seller", middleware.ValidateToken, productControllers.GetSellerProducts(db))
		products.POST("/wishlist", middleware.ValidateToken, productControllers.AddToWishlist(db))
		products.POST("/rating", middleware.ValidateToken, productControllers.RateProduct(db))
		products.GET("/:id", productControllers.GetProductByID(db))

		products.POST("", middleware.AdminAuth, productControllers.CreateProduct(db))
		products.PUT("/:id", middleware.AdminAuth, productControllers.UpdateProduct(db))
		products.DELETE("/:id", middleware.AdminAuth, productControllers.DeleteProduct(db))
	}
}
