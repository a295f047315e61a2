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

type RatingInput struct {
	Star      int    `json:"star"`
	ProductID string `json:"productId" binding:"required"`
	Comments  string `json:"comments"`
}

// POST /api/products/rating
//
// Upserts the caller's rating on the product, then recomputes totalRatings
// as the rounded integer average of all stars.
func RateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var input RatingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		productID, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
			return
		}

		ctx := c.Request.Context()
		users := db.Collection("users")
		products := db.Collection("products")

		if err := users.FindOne(ctx, bson.M{"_id": userID}).Err(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}

		var product models.Product
		if err := products.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate product"})
			return
		}

		if product.RatingBy(userID) > -1 {
			// Update the caller's existing rating in place.
			filter := bson.M{"_id": productID, "ratings.postedBy": userID}
			update := bson.M{"$set": bson.M{
				"ratings.$.star":     input.Star,
				"ratings.$.comments": input.Comments,
			}}
			if _, err := products.UpdateOne(ctx, filter, update); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate product"})
				return
			}
		} else {
			rating := models.Rating{Star: input.Star, Comments: input.Comments, PostedBy: userID}
			update := bson.M{"$push": bson.M{"ratings": rating}}
			if _, err := products.UpdateOne(ctx, bson.M{"_id": productID}, update); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate product"})
				return
			}
		}

		// Re-read to pick up the new ratings list before averaging.
		if err := products.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate product"})
			return
		}

		err = products.FindOneAndUpdate(
			ctx,
			bson.M{"_id": productID},
			bson.M{"$set": bson.M{"totalRatings": product.AverageRating()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
