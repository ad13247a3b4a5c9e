package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func TestParseIdentityJWT(t *testing.T) {
	t.Run("Valid Token Yields Identity", func(t *testing.T) {
		tokenString := signToken(t, jwt.MapClaims{
			"sub":  "user-1",
			"role": "receptionist",
			"name": "Meera",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		identity, err := ParseIdentityJWT(tokenString, testSecret)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", identity.UserID)
		assert.Equal(t, "receptionist", identity.Role)
		assert.Equal(t, "Meera", identity.Name)
	})

	t.Run("Expired Token Is Rejected", func(t *testing.T) {
		tokenString := signToken(t, jwt.MapClaims{
			"sub":  "user-1",
			"role": "doctor",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		})

		_, err := ParseIdentityJWT(tokenString, testSecret)

		assert.Error(t, err)
	})

	t.Run("Wrong Secret Is Rejected", func(t *testing.T) {
		tokenString := signToken(t, jwt.MapClaims{
			"sub":  "user-1",
			"role": "doctor",
		})

		_, err := ParseIdentityJWT(tokenString, "other-secret")

		assert.Error(t, err)
	})

	t.Run("Missing Role Claim Is Rejected", func(t *testing.T) {
		tokenString := signToken(t, jwt.MapClaims{
			"sub": "user-1",
		})

		_, err := ParseIdentityJWT(tokenString, testSecret)

		assert.Error(t, err)
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		_, err := ParseIdentityJWT("not-a-jwt", testSecret)

		assert.Error(t, err)
	})
}
