package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name  string
		stars []int
		want  int
	}{
		{"no ratings", nil, 0},
		{"single", []int{4}, 4},
		{"exact average", []int{2, 4}, 3},
		{"rounds up", []int{4, 5}, 5},
		{"rounds down", []int{1, 2, 4}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{}
			for _, s := range tt.stars {
				p.Ratings = append(p.Ratings, Rating{Star: s, PostedBy: primitive.NewObjectID()})
			}
			assert.Equal(t, tt.want, p.AverageRating())
		})
	}
}

func TestRatingBy(t *testing.T) {
	rater := primitive.NewObjectID()
	p := Product{Ratings: []Rating{
		{Star: 3, PostedBy: primitive.NewObjectID()},
		{Star: 5, PostedBy: rater},
	}}

	assert.Equal(t, 1, p.RatingBy(rater))
	assert.Equal(t, -1, p.RatingBy(primitive.NewObjectID()))
}
