package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSnapshotProductsCopiesByValue(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := newTestCart(CartProduct{ProductID: productID, Quantity: 2, Title: "Lamp", Price: 30})

	order := Order{
		ID:       primitive.NewObjectID(),
		Products: SnapshotProducts(cart.Products),
		OrderBy:  cart.UserID,
	}

	// Mutating the cart after checkout must not change the placed order.
	cart.AddProduct(CartProduct{ProductID: productID, Quantity: 8})
	cart.Products[0].Title = "Renamed"

	require.Len(t, order.Products, 1)
	assert.Equal(t, 2, order.Products[0].Quantity)
	assert.Equal(t, "Lamp", order.Products[0].Title)
}

func TestSnapshotProductsEmptyCart(t *testing.T) {
	snapshot := SnapshotProducts(nil)

	assert.NotNil(t, snapshot)
	assert.Empty(t, snapshot)
}
