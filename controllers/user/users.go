package userControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harshal-sawant/ecommerceStoreBackend/auth"
	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
	"github.com/harshal-sawant/ecommerceStoreBackend/models"
)

type UpdateUserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type AddressInput struct {
	Address string `json:"address"`
}

// profile is the trimmed response shape for user endpoints.
func profile(u *models.User) gin.H {
	return gin.H{
		"_id":      u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}

// GET /api/users (admin)
func GetUsers(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cursor, err := db.Collection("users").Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		users := []models.User{}
		if err := cursor.All(ctx, &users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// GET /api/users/:id (owner or admin)
func GetUser(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}

		var user models.User
		if err := db.Collection("users").FindOne(c.Request.Context(), bson.M{"_id": userID}).Decode(&user); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, profile(&user))
	}
}

// PUT /api/users/:id (owner or admin)
func UpdateUser(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := bson.M{"updatedAt": time.Now()}
		if input.Username != nil {
			updates["username"] = *input.Username
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Password != nil {
			encrypted, err := auth.EncryptPassword(*input.Password, os.Getenv("PASSWORD_KEY"))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
			updates["password"] = encrypted
		}

		var user models.User
		err = db.Collection("users").FindOneAndUpdate(
			c.Request.Context(),
			bson.M{"_id": userID},
			bson.M{"$set": updates},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&user)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, profile(&user))
	}
}

// DELETE /api/users/:id (owner or admin)
func DeleteUser(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}

		var user models.User
		err = db.Collection("users").FindOneAndDelete(c.Request.Context(), bson.M{"_id": userID}).Decode(&user)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		c.JSON(http.StatusOK, profile(&user))
	}
}

// GET /api/users/wishlist
//
// Expands the wishlist product ids to full product documents.
func GetWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}

		wishlist := []models.Product{}
		if len(user.Wishlist) > 0 {
			cursor, err := db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": user.Wishlist}})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
				return
			}
			if err := cursor.All(ctx, &wishlist); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"_id":      user.ID,
			"username": user.Username,
			"wishlist": wishlist,
		})
	}
}

// POST /api/users/address
func SaveAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Collection("users").FindOneAndUpdate(
			c.Request.Context(),
			bson.M{"_id": userID},
			bson.M{"$set": bson.M{"address": input.Address, "updatedAt": time.Now()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&user)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"_id":      user.ID,
			"username": user.Username,
			"address":  user.Address,
		})
	}
}
