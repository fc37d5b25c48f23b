package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dhp131/beaute-project-BE/middleware"
	"github.com/dhp131/beaute-project-BE/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, roles []string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":   "507f1f77bcf86cd799439011",
		"role": roles,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func setupGuardedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	r.GET("/guarded", handlers...)
	return r
}

func doGuardedGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := setupGuardedRouter()

	w := doGuardedGet(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsWrongSignature(t *testing.T) {
	r := setupGuardedRouter()

	w := doGuardedGet(r, signToken(t, "other-secret", []string{models.RoleCustomer}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenSetsUserID(t *testing.T) {
	r := setupGuardedRouter()

	w := doGuardedGet(r, signToken(t, testSecret, []string{models.RoleCustomer}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "507f1f77bcf86cd799439011")
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	r := setupGuardedRouter(models.RoleStaff, models.RoleManager)

	w := doGuardedGet(r, signToken(t, testSecret, []string{models.RoleStaff}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_AllowsAnyOfSeveral(t *testing.T) {
	r := setupGuardedRouter(models.RoleStaff, models.RoleManager)

	w := doGuardedGet(r, signToken(t, testSecret, []string{models.RoleCustomer, models.RoleManager}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_ForbidsMissingRole(t *testing.T) {
	r := setupGuardedRouter(models.RoleStaff, models.RoleManager)

	w := doGuardedGet(r, signToken(t, testSecret, []string{models.RoleCustomer}))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
