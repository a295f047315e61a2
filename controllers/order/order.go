package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harshal-sawant/ecommerceStoreBackend/middleware"
	"github.com/harshal-sawant/ecommerceStoreBackend/models"
)

const codStatus = "Cash on Delivery"

type PlaceOrderInput struct {
	Address   string  `json:"address"`
	Email     string  `json:"email"`
	Contact   string  `json:"contact"`
	CartTotal float64 `json:"cartTotal"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/orders
//
// Creates a COD order from the caller's current cart. The amount is the
// client-supplied cartTotal, not recomputed from line items, matching the
// legacy API. The cart is not cleared and product stock is not decremented.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := c.Request.Context()

		var cart models.Cart
		err := db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Cart not found for this user"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		order := models.Order{
			ID:       primitive.NewObjectID(),
			Products: models.SnapshotProducts(cart.Products),
			PaymentIntent: models.PaymentIntent{
				ID:       uuid.NewString(),
				Method:   "COD",
				Amount:   input.CartTotal,
				Status:   codStatus,
				Created:  time.Now(),
				Currency: "USD",
			},
			OrderBy:     userID,
			Email:       input.Email,
			Address:     input.Address,
			Contact:     input.Contact,
			OrderStatus: codStatus,
			CreatedAt:   time.Now(),
		}

		if _, err := db.Collection("orders").InsertOne(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order created successfully"})
	}
}

// GET /api/orders (admin)
func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		orders := []models.Order{}
		if err := cursor.All(ctx, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var order models.Order
		err = db.Collection("orders").FindOne(c.Request.Context(), bson.M{"_id": orderID}).Decode(&order)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// Legacy behavior: a missing order is a 200 with a null body.
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// populatedLine mirrors a mongoose-populated order line: the productId field
// carries the full product document (or null when the product is gone).
type populatedLine struct {
	Product  *models.Product `json:"productId"`
	Quantity int             `json:"quantity"`
	Title    string          `json:"title"`
	Image    string          `json:"image"`
	Price    float64         `json:"price"`
}

type populatedOrder struct {
	ID            primitive.ObjectID   `json:"_id"`
	Products      []populatedLine      `json:"products"`
	PaymentIntent models.PaymentIntent `json:"paymentIntent"`
	OrderBy       *models.User         `json:"orderBy"`
	Email         string               `json:"email,omitempty"`
	Address       string               `json:"address,omitempty"`
	Contact       string               `json:"contact,omitempty"`
	OrderStatus   string               `json:"orderStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// GET /api/orders/user
//
// Returns the caller's orders with product and orderer references expanded
// to their full documents. An empty result keeps the legacy payload shape
// {msg: "No Orders Found"} instead of an empty list.
func GetUserOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{"orderBy": userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		if len(orders) == 0 {
			c.JSON(http.StatusOK, gin.H{"msg": "No Orders Found"})
			return
		}

		var orderer *models.User
		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err == nil {
			orderer = &user
		}

		products := db.Collection("products")
		populated := make([]populatedOrder, 0, len(orders))
		for _, order := range orders {
			lines := make([]populatedLine, 0, len(order.Products))
			for _, item := range order.Products {
				line := populatedLine{
					Quantity: item.Quantity,
					Title:    item.Title,
					Image:    item.Image,
					Price:    item.Price,
				}
				var product models.Product
				if err := products.FindOne(ctx, bson.M{"_id": item.ProductID}).Decode(&product); err == nil {
					line.Product = &product
				}
				lines = append(lines, line)
			}
			populated = append(populated, populatedOrder{
				ID:            order.ID,
				Products:      lines,
				PaymentIntent: order.PaymentIntent,
				OrderBy:       orderer,
				Email:         order.Email,
				Address:       order.Address,
				Contact:       order.Contact,
				OrderStatus:   order.OrderStatus,
				CreatedAt:     order.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, populated)
	}
}

// DELETE /api/orders/:id (admin)
//
// External callers address orders by the nested paymentIntent.id, not the
// order's own _id.
func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID := c.Param("id")

		var deleted *models.Order
		var order models.Order
		err := db.Collection("orders").FindOneAndDelete(c.Request.Context(), bson.M{"paymentIntent.id": paymentID}).Decode(&order)
		if err == nil {
			deleted = &order
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"msg":          "Order successfully deleted",
			"deletedOrder": deleted,
		})
	}
}

// PUT /api/orders/:id (admin)
//
// Sets orderStatus and replaces the paymentIntent wholesale with {status},
// dropping id/method/amount/created/currency. Destructive, but it is what
// the legacy API does and clients depend on the resulting shape.
func UpdateOrderStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		update := bson.M{"$set": bson.M{
			"orderStatus":   input.Status,
			"paymentIntent": bson.M{"status": input.Status},
		}}

		var order models.Order
		err = db.Collection("orders").FindOneAndUpdate(
			c.Request.Context(),
			bson.M{"_id": orderID},
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&order)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
