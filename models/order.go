package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus enumerates the lifecycle states of an order. Transitions are
// not validated as a state machine; any status may be set directly.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusApproved  OrderStatus = "Approved"
	OrderStatusShipping  OrderStatus = "Shipping"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancel    OrderStatus = "Cancel"
)

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusShipping,
		OrderStatusCompleted, OrderStatusCancel:
		return true
	}
	return false
}

// OrderItem is a line item carrying a snapshot of the product at purchase
// time. Price, name and image are frozen here; the live product is only
// resolved for reporting (see Product field).
type OrderItem struct {
	ProductID               primitive.ObjectID `bson:"productId" json:"productId"`
	Image                   string             `bson:"image" json:"image"`
	Name                    string             `bson:"name" json:"name"`
	Quantity                int                `bson:"quantity" json:"quantity"`
	Price                   float64            `bson:"price" json:"price"`
	ProductDiscount         float64            `bson:"productDiscount" json:"productDiscount"`
	TotalPriceAfterDiscount float64            `bson:"totalPriceAfterDiscount" json:"totalPriceAfterDiscount"`

	// Product holds the populated product reference (name + current
	// inventory) on report reads. Never persisted.
	Product *ProductRef `bson:"-" json:"product,omitempty"`
}

// ProductRef is the populated view of a line item's product reference.
type ProductRef struct {
	ID       primitive.ObjectID `json:"_id"`
	Name     string             `json:"name"`
	Quantity int                `json:"quantity"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerID   primitive.ObjectID `bson:"customerId" json:"customerId"`
	Amount       float64            `bson:"amount" json:"amount"`
	Address      string             `bson:"address" json:"address"`
	Status       OrderStatus        `bson:"status,omitempty" json:"status,omitempty"`
	OrderDate    time.Time          `bson:"orderDate" json:"orderDate"`
	ReasonCancel string             `bson:"reasonCancel,omitempty" json:"reasonCancel,omitempty"`
	Products     []OrderItem        `bson:"products" json:"products"`
	AppTransID   string             `bson:"appTransId,omitempty" json:"appTransId,omitempty"`
	IsPaid       bool               `bson:"isPaid" json:"isPaid"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Address  string                   `json:"address" binding:"required"`
	Products []CreateOrderItemRequest `json:"products" binding:"required,min=1,dive"`
}

type CreateOrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateOrderStatusRequest mutates an order's status. Reason is only
// meaningful for the Cancel status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
	Reason string      `json:"reason"`
}

// OrderStatusEvent is published whenever an order's status changes.
type OrderStatusEvent struct {
	OrderID    string      `json:"orderId"`
	CustomerID string      `json:"customerId"`
	Status     OrderStatus `json:"status"`
	Reason     string      `json:"reason,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
}
