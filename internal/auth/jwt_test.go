package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthenticator() *JWTAuthenticator {
	return NewJWTAuthenticator("access-secret", "refresh-secret", "meama", "meama", time.Hour, 24*time.Hour)
}

func TestGenerateAndValidateTokens(t *testing.T) {
	a := testAuthenticator()

	access, refresh, err := a.GenerateTokens("admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	token, err := a.ValidateAccessToken(access)
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "admin", claims["role"])

	_, err = a.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
}

func TestValidate_RejectsCrossTokenUse(t *testing.T) {
	a := testAuthenticator()
	access, refresh, err := a.GenerateTokens("admin", "admin")
	require.NoError(t, err)

	// tokens are signed with different secrets and are not interchangeable
	_, err = a.ValidateAccessToken(refresh)
	assert.Error(t, err)
	_, err = a.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidate_RejectsExpired(t *testing.T) {
	a := NewJWTAuthenticator("access-secret", "refresh-secret", "meama", "meama", -time.Minute, -time.Minute)
	access, _, err := a.GenerateTokens("admin", "admin")
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(access)
	assert.Error(t, err)
}
