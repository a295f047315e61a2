package productControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
	"github.com/harshal-sawant/ecommerceStoreBackend/models"
)

type CreateProductInput struct {
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
	Brand       string   `json:"brand"`
	Quantity    int      `json:"quantity"`
	Color       string   `json:"color"`
}

// POST /api/products (admin)
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Title == "" || input.Price == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and price are required"})
			return
		}

		now := time.Now()
		product := models.Product{
			ID:          primitive.NewObjectID(),
			Title:       input.Title,
			Slug:        slug.Make(input.Title),
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Categories:  input.Categories,
			Brand:       input.Brand,
			Quantity:    input.Quantity,
			Color:       input.Color,
			ListedBy:    userID,
			Ratings:     []models.Rating{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if _, err := db.Collection("products").InsertOne(c.Request.Context(), product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
