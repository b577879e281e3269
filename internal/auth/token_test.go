package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	token, expiresAt, err := tm.GenerateToken("orchestration-host", RoleOperator)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "orchestration-host", claims.SubjectID)
	assert.Equal(t, RoleOperator, claims.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	token, _, err := tm.GenerateToken("host", RoleReader)
	require.NoError(t, err)

	other := NewTokenManager("different", 60)
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestRole_Allows(t *testing.T) {
	assert.True(t, RoleOperator.Allows(RoleReader))
	assert.True(t, RoleOperator.Allows(RoleOperator))
	assert.True(t, RoleReader.Allows(RoleReader))
	assert.False(t, RoleReader.Allows(RoleOperator))
}

func TestAPIKeyHashing(t *testing.T) {
	hash, err := HashAPIKey("s3cret-key", 4)
	require.NoError(t, err)

	assert.NoError(t, CompareAPIKey(hash, "s3cret-key"))
	assert.Error(t, CompareAPIKey(hash, "wrong-key"))
}
