package controllers

import (
	"net/http"

	"github.com/dhp131/beaute-project-BE/middleware"
	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	service services.OrderService
}

func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// CreateOrder checks out the authenticated user's items.
// POST /orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}

	order, se := oc.service.Create(c.Request.Context(), customerID, &req)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "data": order})
}

// GetOrderByID returns one order.
// GET /orders/:id
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, se := oc.service.GetByID(c.Request.Context(), c.Param("id"))
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

// GetMyOrders lists the authenticated user's orders, newest first.
// GET /orders
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	orders, se := oc.service.GetByCustomer(c.Request.Context(), customerID)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// UpdateOrderStatus sets an order's status directly.
// PUT /orders/:id/status
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}
	order, se := oc.service.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "data": order})
}

// MarkOrderPaid flags an order as paid.
// PUT /orders/:id/paid
func (oc *OrderController) MarkOrderPaid(c *gin.Context) {
	order, se := oc.service.MarkPaid(c.Request.Context(), c.Param("id"))
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order marked as paid", "data": order})
}
