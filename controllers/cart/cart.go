package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
	"github.com/harshal-sawant/ecommerceStoreBackend/models"
)

type AddItemInput struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

type CartItemRef struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// POST /api/carts/add
func AddItemToCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid product"})
			return
		}
		productID, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid product"})
			return
		}

		// Display fields come from the caller, not the catalog. The client
		// is trusted here, same as the legacy API.
		item := models.CartProduct{
			ProductID: productID,
			Quantity:  input.Quantity,
			Title:     input.Title,
			Image:     input.Image,
			Price:     input.Price,
		}

		carts := db.Collection("carts")
		ctx := c.Request.Context()

		var cart models.Cart
		err = carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
			// No cart yet: create one with a single line.
			newCart := models.Cart{
				ID:       primitive.NewObjectID(),
				UserID:   userID,
				Products: []models.CartProduct{item},
			}
			if _, err := carts.InsertOne(ctx, newCart); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"status": true, "newCart": newCart})
			return
		}

		cart.AddProduct(item)
		update := bson.M{"$set": bson.M{"products": cart.Products}}
		if _, err := carts.UpdateOne(ctx, bson.M{"_id": cart.ID}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": true, "updatedCart": cart})
	}
}

// GET /api/carts/get
func GetCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var cart models.Cart
		err := db.Collection("carts").FindOne(c.Request.Context(), bson.M{"userId": userID}).Decode(&cart)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Cart not found for this user"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    true,
			"cart":      cart,
			"cartCount": cart.ItemCount(),
		})
	}
}

// POST /api/carts/decrease
func DecreaseQuantity(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var input CartItemRef
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid product"})
			return
		}
		productID, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid product"})
			return
		}

		carts := db.Collection("carts")
		ctx := c.Request.Context()

		var cart models.Cart
		if err := carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Cart not found for this user"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Item absence is a 400 here, not a 404, matching the legacy API.
		if !cart.DecreaseProduct(productID, input.Quantity) {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Item does not exist in cart"})
			return
		}

		update := bson.M{"$set": bson.M{"products": cart.Products}}
		if _, err := carts.UpdateOne(ctx, bson.M{"_id": cart.ID}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": true, "updatedCart": cart})
	}
}

// POST /api/carts/remove
func RemoveItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var input CartItemRef
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid product"})
			return
		}
		productID, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid product"})
			return
		}

		carts := db.Collection("carts")
		ctx := c.Request.Context()

		var cart models.Cart
		if err := carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Cart not found for this user"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if !cart.RemoveProduct(productID) {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Item does not exist in cart"})
			return
		}

		update := bson.M{"$set": bson.M{"products": cart.Products}}
		if _, err := carts.UpdateOne(ctx, bson.M{"_id": cart.ID}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": true, "updatedCart": cart})
	}
}

// DELETE /api/carts/delete
//
// Empties the cart rather than deleting the document. Idempotent: clearing
// an already-empty or missing cart still reports success.
func DeleteCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		update := bson.M{"$set": bson.M{"products": []models.CartProduct{}}}
		_, err := db.Collection("carts").UpdateMany(c.Request.Context(), bson.M{"userId": userID}, update)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}
