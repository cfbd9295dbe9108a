package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankit/temple-ledger-go/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken("secret", "u1", "user", time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := utils.GenerateToken("secret", "u1", "user", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := utils.GenerateToken("secret", "u1", "user", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken("secret", token)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("adminpassword")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(hash, "adminpassword"))
	assert.False(t, utils.CheckPassword(hash, "wrong"))
}
