package productControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harshal-sawant/ecommerceStoreBackend/models"
)

type UpdateProductInput struct {
	Title       *string   `json:"title"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Categories  *[]string `json:"categories"`
	Brand       *string   `json:"brand"`
	Quantity    *int      `json:"quantity"`
	Color       *string   `json:"color"`
}

// PUT /api/products/:id (admin)
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := bson.M{"updatedAt": time.Now()}
		if input.Title != nil {
			updates["title"] = *input.Title
			// Slug tracks the title.
			updates["slug"] = slug.Make(*input.Title)
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Categories != nil {
			updates["categories"] = *input.Categories
		}
		if input.Quantity != nil {
			updates["quantity"] = *input.Quantity
		}
		if input.Brand != nil {
			updates["brand"] = *input.Brand
		}
		if input.Color != nil {
			updates["color"] = *input.Color
		}

		var product models.Product
		err = db.Collection("products").FindOneAndUpdate(
			c.Request.Context(),
			bson.M{"_id": productID},
			bson.M{"$set": updates},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&product)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
