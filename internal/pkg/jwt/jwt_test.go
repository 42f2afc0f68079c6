package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := New("secret-one", time.Hour).GenerateToken(1, "a@b.com")
	require.NoError(t, err)

	_, err = New("secret-two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	token, err := New("test-secret", -time.Minute).GenerateToken(1, "a@b.com")
	require.NoError(t, err)

	_, err = New("test-secret", -time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := New("test-secret", time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}
