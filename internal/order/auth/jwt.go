package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/middleware"
)

type sessionClaims struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// NewTokenValidator returns a validator for session tokens issued by the
// user service with the shared secret.
func NewTokenValidator(secret string) middleware.TokenValidator {
	key := []byte(secret)
	return func(tokenString string) (*middleware.Claims, error) {
		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return key, nil
		})
		if err != nil {
			return nil, fmt.Errorf("parse session token: %w", err)
		}
		if !token.Valid {
			return nil, fmt.Errorf("invalid session token")
		}
		return &middleware.Claims{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, nil
	}
}
