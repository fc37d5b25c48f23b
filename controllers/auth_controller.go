package controllers

import (
	"net/http"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/services"
	"github.com/gin-gonic/gin"
)

// AuthController handles account registration and login.
type AuthController struct {
	service services.AuthService
}

func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register creates a customer account.
// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}
	user, se := ac.service.Register(c.Request.Context(), &req)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account registered successfully", "data": user})
}

// Login verifies credentials and returns a bearer token.
// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}
	token, user, se := ac.service.Login(c.Request.Context(), &req)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully", "token": token, "data": user})
}
