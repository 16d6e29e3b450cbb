package utils

import (
	"testing"
	"time"

	"dermref-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("correct horse battery stapl", hash))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("password123", first))
	assert.True(t, CheckPasswordHash("password123", second))
}

func TestSessionJWT_RoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("66b1f0c2a1b2c3d4e5f60718", models.RoleDoctor, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "66b1f0c2a1b2c3d4e5f60718", claims.DoctorID)
	assert.Equal(t, models.RoleDoctor, claims.Role)
}

func TestSessionJWT_WrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT("66b1f0c2a1b2c3d4e5f60718", models.RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionJWT(token, "another-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestSessionJWT_Expired(t *testing.T) {
	token, err := GenerateSessionJWT("66b1f0c2a1b2c3d4e5f60718", models.RoleDoctor, "secret", -time.Minute)
	require.NoError(t, err)

	claims, err := ParseSessionJWT(token, "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestSessionJWT_Garbage(t *testing.T) {
	claims, err := ParseSessionJWT("not-a-token", "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
