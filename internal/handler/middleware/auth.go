package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"organic-storefront/internal/pkg/config"
	"organic-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxAdminSubjectKey = "admin_subject"

var (
	errUnexpectedSigningMethod = errs.New("unexpected token signing method")
	errAdminRoleRequired       = errs.New("admin role required")
)

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies admin bearer tokens. Tokens are issued elsewhere;
// this service only checks the signature and the admin role claim.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(cfg.JWTSecret)}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		subject, err := m.validate(token)
		if err != nil {
			slog.Warn("admin token rejected", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ctxAdminSubjectKey, subject)
		c.Next()
	}
}

func (m *AuthMiddleware) validate(token string) (string, error) {
	var claims adminClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	if claims.Role != "admin" {
		return "", errAdminRoleRequired
	}
	return claims.Subject, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetAdminSubject returns the authenticated admin identity, or "" on public
// routes.
func GetAdminSubject(c *gin.Context) string {
	if subject, exists := c.Get(ctxAdminSubjectKey); exists {
		if s, ok := subject.(string); ok {
			return s
		}
	}
	return ""
}
