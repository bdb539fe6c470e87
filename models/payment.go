package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout. CartItems holds the ids of the
// cart documents that were paid for and removed; FoodItemIDs holds the
// menu item ids the order-stats pipeline joins against.
type Payment struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Email       string               `json:"email" bson:"email"`
	Price       float64              `json:"price" bson:"price"`
	CartItems   []primitive.ObjectID `json:"cartItems" bson:"cartItems"`
	FoodItemIDs []primitive.ObjectID `json:"foodItemId" bson:"foodItemId"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
}

type PaymentInput struct {
	Email       string   `json:"email" validate:"required,email"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	CartItems   []string `json:"cartItems" validate:"required,min=1,dive,len=24,hexadecimal"`
	FoodItemIDs []string `json:"foodItemId" validate:"required,min=1,dive,len=24,hexadecimal"`
}

// PaymentIntentInput is the body of POST /create-payment-intent. Price is
// a decimal major-unit amount (e.g. 19.99 USD).
type PaymentIntentInput struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}
