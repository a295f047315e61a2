package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCart(products ...CartProduct) Cart {
	return Cart{
		ID:       primitive.NewObjectID(),
		UserID:   primitive.NewObjectID(),
		Products: products,
	}
}

func TestAddProductMergesSameProduct(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := newTestCart()

	cart.AddProduct(CartProduct{ProductID: productID, Quantity: 2, Title: "Mug", Price: 9.99})
	cart.AddProduct(CartProduct{ProductID: productID, Quantity: 3, Title: "Mug", Price: 9.99})

	require.Len(t, cart.Products, 1, "same product must never produce two lines")
	assert.Equal(t, 5, cart.Products[0].Quantity)
	assert.Equal(t, "Mug", cart.Products[0].Title)
}

func TestAddProductAppendsNewProduct(t *testing.T) {
	cart := newTestCart(CartProduct{ProductID: primitive.NewObjectID(), Quantity: 1})

	cart.AddProduct(CartProduct{ProductID: primitive.NewObjectID(), Quantity: 4})

	assert.Len(t, cart.Products, 2)
	assert.Equal(t, 4, cart.Products[1].Quantity)
}

func TestDecreaseProductClampsAtOne(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := newTestCart(CartProduct{ProductID: productID, Quantity: 5})

	ok := cart.DecreaseProduct(productID, 10)

	require.True(t, ok)
	require.Len(t, cart.Products, 1, "decreasing must never remove the line")
	assert.Equal(t, 1, cart.Products[0].Quantity)
}

func TestDecreaseProduct(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := newTestCart(CartProduct{ProductID: productID, Quantity: 5})

	ok := cart.DecreaseProduct(productID, 2)

	require.True(t, ok)
	assert.Equal(t, 3, cart.Products[0].Quantity)
}

func TestDecreaseProductMissing(t *testing.T) {
	cart := newTestCart(CartProduct{ProductID: primitive.NewObjectID(), Quantity: 5})

	ok := cart.DecreaseProduct(primitive.NewObjectID(), 1)

	assert.False(t, ok)
	assert.Equal(t, 5, cart.Products[0].Quantity)
}

func TestRemoveProductPreservesOrder(t *testing.T) {
	a := CartProduct{ProductID: primitive.NewObjectID(), Quantity: 1, Title: "A"}
	b := CartProduct{ProductID: primitive.NewObjectID(), Quantity: 2, Title: "B"}
	d := CartProduct{ProductID: primitive.NewObjectID(), Quantity: 3, Title: "C"}
	cart := newTestCart(a, b, d)

	ok := cart.RemoveProduct(b.ProductID)

	require.True(t, ok)
	require.Len(t, cart.Products, 2)
	assert.Equal(t, "A", cart.Products[0].Title)
	assert.Equal(t, "C", cart.Products[1].Title)
}

func TestRemoveProductMissing(t *testing.T) {
	cart := newTestCart(CartProduct{ProductID: primitive.NewObjectID(), Quantity: 1})

	ok := cart.RemoveProduct(primitive.NewObjectID())

	assert.False(t, ok)
	assert.Len(t, cart.Products, 1)
}

func TestCartProductPersistsZeroPrice(t *testing.T) {
	// Free items must round-trip through bson with their price intact; an
	// omitted field would read back as missing rather than 0.
	line := CartProduct{
		ProductID: primitive.NewObjectID(),
		Quantity:  1,
		Title:     "Sample Sticker",
		Image:     "",
		Price:     0,
	}

	raw, err := bson.Marshal(line)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Contains(t, doc, "price")
	assert.Contains(t, doc, "title")
	assert.Contains(t, doc, "image")
	assert.Equal(t, float64(0), doc["price"])
}

func TestItemCountIsLineCountNotQuantitySum(t *testing.T) {
	cart := newTestCart(
		CartProduct{ProductID: primitive.NewObjectID(), Quantity: 7},
		CartProduct{ProductID: primitive.NewObjectID(), Quantity: 3},
	)

	assert.Equal(t, 2, cart.ItemCount())
}
