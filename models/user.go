package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles. A user's role field is a set; membership is tested with
// $in against the stored array.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleManager  = "manager"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleStaff || role == RoleManager
}

type User struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string              `bson:"name" json:"name"`
	Email     string              `bson:"email" json:"email"`
	Password  string              `bson:"password" json:"-"`
	Roles     []string            `bson:"role" json:"role"`
	SkinType  *primitive.ObjectID `bson:"skinType" json:"skinType"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`

	// SkinTypeDoc is the populated skin type on quiz responses.
	SkinTypeDoc *SkinType `bson:"-" json:"skinTypeDetail,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
