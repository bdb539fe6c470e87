package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

type MenuItemInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Category    string  `json:"category" validate:"required,min=2,max=50"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Image       string  `json:"image" validate:"omitempty,url"`
}
