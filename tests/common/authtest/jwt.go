//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"dive-booking-gateway/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const TestAdminSecret = "test-admin-secret"

type JWTHelper struct {
	secret string
}

func NewJWTHelper(secret string) *JWTHelper {
	return &JWTHelper{secret: secret}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.secret, time.Hour)
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := h.Service().GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject, role string) string {
	t.Helper()
	service := jwt.NewService(h.secret, -time.Minute)
	token, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}
