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

type WishlistInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// POST /api/products/wishlist
//
// Toggles the product on the caller's wishlist: removes it when present,
// adds it otherwise. Responds with the updated user.
func AddToWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		productID, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product"})
			return
		}

		users := db.Collection("users")
		ctx := c.Request.Context()

		var user models.User
		if err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		var update bson.M
		if user.InWishlist(productID) {
			update = bson.M{"$pull": bson.M{"wishlist": productID}}
		} else {
			update = bson.M{"$push": bson.M{"wishlist": productID}}
		}

		err = users.FindOneAndUpdate(
			ctx,
			bson.M{"_id": userID},
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
