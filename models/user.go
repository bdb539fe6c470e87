package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the set of roles a user document may carry. A user with no
// role field is a plain customer.
type Role string

const (
	RoleCustomer Role = ""
	RoleAdmin    Role = "admin"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	PhotoURL  string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role      Role               `json:"role,omitempty" bson:"role,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// UserInput is the signup payload. Email uniqueness is a business rule,
// not a storage constraint; duplicates are tolerated at this layer.
type UserInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

// TokenInput is the body of POST /jwt.
type TokenInput struct {
	Email string `json:"email" validate:"required,email"`
}
