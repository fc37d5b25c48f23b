package controllers

import (
	"net/http"

	"github.com/dhp131/beaute-project-BE/middleware"
	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/services"
	"github.com/gin-gonic/gin"
)

// SkinTypeController handles HTTP requests for skin types and the quiz
// assignment endpoint.
type SkinTypeController struct {
	service services.SkinTypeService
}

func NewSkinTypeController(service services.SkinTypeService) *SkinTypeController {
	return &SkinTypeController{service: service}
}

// CreateSkinType creates a new skin type.
// POST /skintypes
func (sc *SkinTypeController) CreateSkinType(c *gin.Context) {
	var req models.CreateSkinTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}
	skinType, se := sc.service.Create(c.Request.Context(), &req)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Skin type created successfully", "data": skinType})
}

// GetAllSkinTypes lists all skin types.
// GET /skintypes
func (sc *SkinTypeController) GetAllSkinTypes(c *gin.Context) {
	skinTypes, se := sc.service.GetAll(c.Request.Context())
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": skinTypes})
}

// GetSkinTypeByID returns one skin type.
// GET /skintypes/:id
func (sc *SkinTypeController) GetSkinTypeByID(c *gin.Context) {
	skinType, se := sc.service.GetByID(c.Request.Context(), c.Param("id"))
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": skinType})
}

// UpdateSkinType applies a partial update.
// PUT /skintypes/:id
func (sc *SkinTypeController) UpdateSkinType(c *gin.Context) {
	var req models.UpdateSkinTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}
	skinType, se := sc.service.Update(c.Request.Context(), c.Param("id"), &req)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skin type updated successfully", "data": skinType})
}

// DeleteSkinType removes a skin type and returns the deleted document.
// DELETE /skintypes/:id
func (sc *SkinTypeController) DeleteSkinType(c *gin.Context) {
	skinType, se := sc.service.Delete(c.Request.Context(), c.Param("id"))
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skin type deleted successfully", "data": skinType})
}

// AddRoutineToSkinType attaches a routine.
// POST /skintypes/:id/routines/:routineId
func (sc *SkinTypeController) AddRoutineToSkinType(c *gin.Context) {
	skinType, se := sc.service.AddRoutine(c.Request.Context(), c.Param("id"), c.Param("routineId"))
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Routine added to skin type", "data": skinType})
}

// RemoveRoutineFromSkinType detaches a routine.
// DELETE /skintypes/:id/routines/:routineId
func (sc *SkinTypeController) RemoveRoutineFromSkinType(c *gin.Context) {
	skinType, se := sc.service.RemoveRoutine(c.Request.Context(), c.Param("id"), c.Param("routineId"))
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Routine removed from skin type", "data": skinType})
}

// SubmitQuiz assigns a skin type to the authenticated user from quiz
// points and records the submission.
// POST /skintypes/quiz
func (sc *SkinTypeController) SubmitQuiz(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var submission models.QuizSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}

	user, se := sc.service.AssignFromQuiz(c.Request.Context(), userID, &submission)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skin type assigned successfully", "data": user})
}

// GetQuizHistory returns the authenticated user's quiz submissions,
// newest first.
// GET /skintypes/quiz/history
func (sc *SkinTypeController) GetQuizHistory(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	results, se := sc.service.QuizHistory(c.Request.Context(), userID)
	if se != nil {
		writeServiceError(c, se)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quiz history retrieved successfully", "data": results})
}
