package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartProduct is one line in a cart or order. Title, image and price are a
// denormalized snapshot of the product's display data at add-time.
type CartProduct struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Title     string             `bson:"title" json:"title"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
}

// Cart is a user's single active cart. A user never has more than one.
type Cart struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	Products []CartProduct      `bson:"products" json:"products"`
}

// indexOf scans the lines for a productId. Carts are small, a linear scan
// is fine.
func (c *Cart) indexOf(productID primitive.ObjectID) int {
	for i, p := range c.Products {
		if p.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddProduct merges the item into the cart: if a line with the same
// productId exists its quantity is incremented, otherwise the item is
// appended. A cart never holds two lines for the same product.
func (c *Cart) AddProduct(item CartProduct) {
	if i := c.indexOf(item.ProductID); i > -1 {
		c.Products[i].Quantity += item.Quantity
		return
	}
	c.Products = append(c.Products, item)
}

// DecreaseProduct lowers a line's quantity, clamped at 1. The line is never
// removed by decreasing, even when the requested amount exceeds the current
// quantity. Returns false when the product is not in the cart.
func (c *Cart) DecreaseProduct(productID primitive.ObjectID, quantity int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	q := c.Products[i].Quantity - quantity
	if q < 1 {
		q = 1
	}
	c.Products[i].Quantity = q
	return true
}

// RemoveProduct deletes the matching line, preserving the relative order of
// the remaining lines. Returns false when the product is not in the cart.
func (c *Cart) RemoveProduct(productID primitive.ObjectID) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.Products = append(c.Products[:i], c.Products[i+1:]...)
	return true
}

// ItemCount is the number of distinct lines, not the sum of quantities.
func (c *Cart) ItemCount() int {
	return len(c.Products)
}
