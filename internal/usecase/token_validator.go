package usecase

import (
	"group-booking-arbiter/internal/domain/access"
	"group-booking-arbiter/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (access.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (access.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return access.Principal{}, err
	}

	role, err := access.NewRole(claims.Role)
	if err != nil {
		return access.Principal{}, err
	}

	return access.NewPrincipal(claims.Subject, claims.MerchantID, role)
}
