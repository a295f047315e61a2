package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
	"github.com/harshal-sawant/ecommerceStoreBackend/models"
)

// GET /api/products
//
// ?new= returns the 2 newest products; ?category= filters by category;
// otherwise everything.
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		products := db.Collection("products")

		filter := bson.M{}
		opts := options.Find()

		if c.Query("new") != "" {
			opts.SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(2)
		} else if category := c.Query("category"); category != "" {
			filter["categories"] = bson.M{"$in": []string{category}}
		}

		cursor, err := products.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		result := []models.Product{}
		if err := cursor.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GET /api/products/:id
func GetProductByID(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
			return
		}

		var product models.Product
		err = db.Collection("products").FindOne(c.Request.Context(), bson.M{"_id": productID}).Decode(&product)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET /api/products/seller
func GetSellerProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		cursor, err := db.Collection("products").Find(ctx, bson.M{"listedBy": userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		result := []models.Product{}
		if err := cursor.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
