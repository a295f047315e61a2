package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Rating struct {
	Star     int                `bson:"star" json:"star"`
	Comments string             `bson:"comments,omitempty" json:"comments,omitempty"`
	PostedBy primitive.ObjectID `bson:"postedBy" json:"postedBy"`
}

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Slug         string             `bson:"slug" json:"slug"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Categories   []string           `bson:"categories,omitempty" json:"categories,omitempty"`
	Brand        string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Sold         int                `bson:"sold" json:"sold"`
	Color        string             `bson:"color,omitempty" json:"color,omitempty"`
	ListedBy     primitive.ObjectID `bson:"listedBy,omitempty" json:"listedBy,omitempty"`
	Ratings      []Rating           `bson:"ratings" json:"ratings"`
	TotalRatings int                `bson:"totalRatings" json:"totalRatings"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AverageRating returns the rounded integer average of all star ratings,
// or 0 when the product has none.
func (p *Product) AverageRating() int {
	if len(p.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Ratings {
		sum += r.Star
	}
	return int(math.Round(float64(sum) / float64(len(p.Ratings))))
}

// RatingBy returns the index of the rating posted by the given user, or -1.
func (p *Product) RatingBy(userID primitive.ObjectID) int {
	for i, r := range p.Ratings {
		if r.PostedBy == userID {
			return i
		}
	}
	return -1
}
