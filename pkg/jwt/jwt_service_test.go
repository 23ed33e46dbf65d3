package jwt

import (
	"Api-Recipes/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser(42, domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
