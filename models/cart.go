package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem references a menu item and the owning user's email. Items are
// created on add-to-cart and removed on explicit delete or on checkout.
type CartItem struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MenuItemID primitive.ObjectID `json:"menuItemId" bson:"menuItemId"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name" bson:"name"`
	Price      float64            `json:"price" bson:"price"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

type CartItemInput struct {
	MenuItemID string  `json:"menuItemId" validate:"required,len=24,hexadecimal"`
	Email      string  `json:"email" validate:"required,email"`
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Image      string  `json:"image" validate:"omitempty,url"`
}
