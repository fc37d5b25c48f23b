package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Image       string              `bson:"image,omitempty" json:"image,omitempty"`
	Category    string              `bson:"category" json:"category"`
	Price       float64             `bson:"price" json:"price"`
	Inventory   int                 `bson:"inventory" json:"inventory"`
	Discount    float64             `bson:"discount,omitempty" json:"discount,omitempty"`
	SkinTypeID  *primitive.ObjectID `bson:"skinTypeId,omitempty" json:"skinTypeId,omitempty"`
	UsageTime   string              `bson:"usageTime,omitempty" json:"usageTime,omitempty"`
	Origin      string              `bson:"origin,omitempty" json:"origin,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`

	// SkinType holds the populated skin type reference on detail reads.
	SkinType *SkinType `bson:"-" json:"skinType,omitempty"`
}

// CreateProductRequest is the catalog creation payload.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Inventory   int     `json:"inventory" binding:"gte=0"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
	SkinTypeID  string  `json:"skinTypeId"`
	UsageTime   string  `json:"usageTime"`
	Origin      string  `json:"origin"`
}

// UpdateProductRequest carries partial catalog updates; nil fields are
// left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Inventory   *int     `json:"inventory" binding:"omitempty,gte=0"`
	Discount    *float64 `json:"discount" binding:"omitempty,gte=0,lte=100"`
	SkinTypeID  *string  `json:"skinTypeId"`
	UsageTime   *string  `json:"usageTime"`
	Origin      *string  `json:"origin"`
}

// UpdateInventoryRequest adjusts inventory by a signed delta.
type UpdateInventoryRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
