package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username  string               `bson:"username" json:"username"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"` // AES ciphertext, never serialized
	IsAdmin   bool                 `bson:"isAdmin" json:"isAdmin"`
	Wishlist  []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	Address   string               `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// InWishlist reports whether the product is already on the user's wishlist.
func (u *User) InWishlist(productID primitive.ObjectID) bool {
	for _, id := range u.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}
