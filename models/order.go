package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentIntent struct {
	ID       string    `bson:"id" json:"id"`
	Method   string    `bson:"method,omitempty" json:"method,omitempty"`
	Amount   float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	Status   string    `bson:"status" json:"status"`
	Created  time.Time `bson:"created,omitempty" json:"created,omitempty"`
	Currency string    `bson:"currency,omitempty" json:"currency,omitempty"`
}

// Order is an immutable snapshot of a cart taken at checkout. Later cart
// mutations never touch a placed order.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Products      []CartProduct      `bson:"products" json:"products"`
	PaymentIntent PaymentIntent      `bson:"paymentIntent" json:"paymentIntent"`
	OrderBy       primitive.ObjectID `bson:"orderBy" json:"orderBy"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Contact       string             `bson:"contact,omitempty" json:"contact,omitempty"`
	OrderStatus   string             `bson:"orderStatus" json:"orderStatus"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// SnapshotProducts copies the cart's lines by value so the order keeps its
// own product list.
func SnapshotProducts(products []CartProduct) []CartProduct {
	snapshot := make([]CartProduct, len(products))
	copy(snapshot, products)
	return snapshot
}
