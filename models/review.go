package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is append-only; there is no update or delete route.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Details   string             `json:"details" bson:"details"`
	Rating    float64            `json:"rating" bson:"rating"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type ReviewInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Details string  `json:"details" validate:"required,min=2,max=2000"`
	Rating  float64 `json:"rating" validate:"required,gte=0,lte=5"`
}
