package controllers

import (
	"net/http"
	"strconv"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/services"
	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests for the catalog.
type ProductController struct {
	service services.ProductService
}

func NewProductController(service services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func writeServiceError(c *gin.Context, se *services.ServiceError) {
	c.JSON(se.StatusCode, gin.H{"message": se.Message})
}

// CreateProduct adds a product to the catalog.
// POST /products
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}
	product, se := pc.service.Create(c.Request.Context(), &req)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "data": product})
}

// GetProducts lists products, optionally filtered by one query param.
// GET /products?category=...|minPrice=&maxPrice=|skinTypeId=|usageTime=|origin=
func (pc *ProductController) GetProducts(c *gin.Context) {
	var (
		products []models.Product
		se       *services.ServiceError
	)
	switch {
	case c.Query("category") != "":
		products, se = pc.service.GetByCategory(c.Request.Context(), c.Query("category"))
	case c.Query("minPrice") != "" || c.Query("maxPrice") != "":
		min, err := strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid minPrice"})
			return
		}
		max, err := strconv.ParseFloat(c.DefaultQuery("maxPrice", "0"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid maxPrice"})
			return
		}
		products, se = pc.service.GetByPriceRange(c.Request.Context(), min, max)
	case c.Query("skinTypeId") != "":
		products, se = pc.service.GetBySkinType(c.Request.Context(), c.Query("skinTypeId"))
	case c.Query("usageTime") != "":
		products, se = pc.service.GetByUsageTime(c.Request.Context(), c.Query("usageTime"))
	case c.Query("origin") != "":
		products, se = pc.service.GetByOrigin(c.Request.Context(), c.Query("origin"))
	default:
		products, se = pc.service.GetAll(c.Request.Context())
	}
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

// GetProductByID returns one product with its skin type populated.
// GET /products/:id
func (pc *ProductController) GetProductByID(c *gin.Context) {
	product, se := pc.service.GetByID(c.Request.Context(), c.Param("id"))
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// UpdateProduct applies a partial update.
// PUT /products/:id
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}
	product, se := pc.service.Update(c.Request.Context(), c.Param("id"), &req)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "data": product})
}

// DeleteProduct removes a product and returns the deleted document.
// DELETE /products/:id
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	product, se := pc.service.Delete(c.Request.Context(), c.Param("id"))
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "data": product})
}

// UpdateInventory adjusts stock by a signed delta.
// PATCH /products/:id/inventory
func (pc *ProductController) UpdateInventory(c *gin.Context) {
	var req models.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}
	product, se := pc.service.UpdateInventory(c.Request.Context(), c.Param("id"), req.Quantity)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory updated successfully", "data": product})
}
