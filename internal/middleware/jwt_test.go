package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu_backoffice/internal/models"
)

func TestValidateTokenAcceptsIssuedToken(t *testing.T) {
	token, err := GenerateToken(7, "staff@example.com", models.RoleAdmin)
	require.NoError(t, err)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestValidateTokenRejectsOtherSigningMethods(t *testing.T) {
	// Same secret, different HMAC variant: must not validate
	claims := jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}
