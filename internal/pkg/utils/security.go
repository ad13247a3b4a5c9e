package utils

import (
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/exceptions"
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ParseIdentityJWT verifies the bearer token issued by the clinic's identity
// provider and extracts the verified user id and role. Authentication itself
// is an external capability; this service only consumes the result.
func ParseIdentityJWT(tokenString, secret string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	if userID == "" || role == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return &models.Identity{UserID: userID, Name: name, Role: role}, nil
}
