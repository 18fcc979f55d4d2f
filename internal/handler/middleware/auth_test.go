//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"organic-storefront/internal/handler/middleware"
	"organic-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, role, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"role": role,
		"sub":  subject,
		"exp":  expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	auth := middleware.NewAuthMiddleware(config.AuthConfig{JWTSecret: testSecret})
	engine.GET("/admin/ping", auth.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": middleware.GetAdminSubject(c)})
	})
	return engine
}

func performWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdmin(t *testing.T) {
	router := newProtectedRouter()
	future := time.Now().Add(time.Hour)

	t.Run("valid admin token passes and exposes subject", func(t *testing.T) {
		token := signToken(t, testSecret, "admin", "ops@example.com", future)
		rec := performWithToken(router, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ops@example.com")
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := performWithToken(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin role is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, "customer", "buyer@example.com", future)
		rec := performWithToken(router, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, "admin", "ops@example.com", time.Now().Add(-time.Minute))
		rec := performWithToken(router, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with the wrong secret is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", "admin", "ops@example.com", future)
		rec := performWithToken(router, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetAdminSubjectOnPublicRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/public", func(c *gin.Context) {
		c.String(http.StatusOK, "%q", middleware.GetAdminSubject(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, `""`, rec.Body.String())
}
