package controllers

import (
	"net/http"
	"time"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/services"
	"github.com/gin-gonic/gin"
)

// DashboardController exposes the date-ranged reporting queries.
type DashboardController struct {
	service services.DashboardService
}

func NewDashboardController(service services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// parseDate accepts RFC3339 instants or plain calendar dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// dateRange reads the required start/end query params. On failure it writes
// the 400 envelope and reports false.
func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		writeDashboardError(c, &services.ServiceError{StatusCode: 400, Message: "Missing start or end date"})
		return time.Time{}, time.Time{}, false
	}
	start, err := parseDate(startStr)
	if err != nil {
		writeDashboardError(c, &services.ServiceError{StatusCode: 400, Message: "Invalid start date"})
		return time.Time{}, time.Time{}, false
	}
	end, err := parseDate(endStr)
	if err != nil {
		writeDashboardError(c, &services.ServiceError{StatusCode: 400, Message: "Invalid end date"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func writeDashboardError(c *gin.Context, se *services.ServiceError) {
	c.JSON(se.StatusCode, gin.H{
		"status":  se.StatusCode,
		"ok":      false,
		"message": se.Message,
	})
}

// OrdersByDate returns orders in the date range, newest first.
// GET /dashboard/orders?start=...&end=...
func (dc *DashboardController) OrdersByDate(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	report, se := dc.service.OrdersInRange(c.Request.Context(), start, end)
	if se != nil {
		writeDashboardError(c, se)
		return
	}
	c.JSON(http.StatusOK, report)
}

// OrdersByDateAndStatus filters orders in range by status. Omitting the
// status param applies no status predicate; passing an empty status matches
// only orders with a null/absent status field.
// GET /dashboard/orders/status?start=...&end=...&status=...
func (dc *DashboardController) OrdersByDateAndStatus(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	var status *models.OrderStatus
	if raw, present := c.GetQuery("status"); present {
		st := models.OrderStatus(raw)
		status = &st
	}

	report, se := dc.service.OrdersInRangeByStatus(c.Request.Context(), start, end, status)
	if se != nil {
		writeDashboardError(c, se)
		return
	}
	c.JSON(http.StatusOK, report)
}

// AccountsByRole returns accounts created in range whose role set contains
// the required role param.
// GET /dashboard/accounts?start=...&end=...&role=...
func (dc *DashboardController) AccountsByRole(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	report, se := dc.service.AccountsByRoleInRange(c.Request.Context(), start, end, c.Query("role"))
	if se != nil {
		writeDashboardError(c, se)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CustomersCompletedQuiz returns customer accounts created in range that
// carry a skin type assignment.
// GET /dashboard/customers/quiz?start=...&end=...
func (dc *DashboardController) CustomersCompletedQuiz(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	report, se := dc.service.CustomersCompletedQuizInRange(c.Request.Context(), start, end)
	if se != nil {
		writeDashboardError(c, se)
		return
	}
	c.JSON(http.StatusOK, report)
}
