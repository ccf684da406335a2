package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"dive-booking-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminTokenCookieName lets the debug pages be opened in a browser tab.
const AdminTokenCookieName = "admin_token"

const ctxAdminSubjectKey = "admin_subject"

type AdminMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAdminMiddleware(tokenValidator usecase.TokenValidator) *AdminMiddleware {
	return &AdminMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin guards debug routes. With no admin secret configured the
// routes stay open, which is what local development relies on.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.tokenValidator.Enabled() {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Admin token required",
			})
			return
		}

		subject, err := m.tokenValidator.ValidateAdminToken(token)
		if err != nil {
			slog.Warn("Admin token rejected",
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()),
			)
			status := http.StatusUnauthorized
			msg := "Invalid or expired token"
			if errors.Is(err, usecase.ErrInsufficientRole) {
				status = http.StatusForbidden
				msg = "Insufficient permissions"
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		c.Set(ctxAdminSubjectKey, subject)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	if token, err := c.Cookie(AdminTokenCookieName); err == nil {
		return token
	}
	return ""
}

func GetAdminSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
