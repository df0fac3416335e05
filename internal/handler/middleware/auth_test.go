//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/handler/middleware"
	"projector-reservation/internal/pkg/jwt"
	"projector-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, service *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(service))

	router := gin.New()
	protected := router.Group("", authMw.RequireAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
	})
	protected.GET("/admin", authMw.RequireRoleAtLeast(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	router := setupRouter(t, service)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, user.RoleProfessor)
	require.NoError(t, err)

	t.Run("accepts a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID.String())
		assert.Contains(t, rec.Body.String(), "professor")
	})

	t.Run("accepts the session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		forged, err := other.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	router := setupRouter(t, service)

	t.Run("professor is refused admin routes", func(t *testing.T) {
		token, err := service.GenerateToken(uuid.New(), user.RoleProfessor)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := service.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
