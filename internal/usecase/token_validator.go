package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"errors"

	"dive-booking-gateway/internal/pkg/jwt"
)

var ErrInsufficientRole = errors.New("admin role required")

// TokenValidator provides admin token validation for middleware
type TokenValidator interface {
	Enabled() bool
	ValidateAdminToken(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) Enabled() bool {
	return t.jwtService.Enabled()
}

func (t *tokenValidatorImpl) ValidateAdminToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	if claims.Role != jwt.RoleAdmin {
		return "", ErrInsufficientRole
	}

	return claims.Subject, nil
}
