package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

func testConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "dispatch",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(cfg, "operator-1", "dispatcher")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "operator-1", claims.UserID)
	assert.Equal(t, "dispatcher", claims.Role)
	assert.Equal(t, "dispatch", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testConfig(), "operator-1", "dispatcher")
	require.NoError(t, err)

	bad := testConfig()
	bad.Secret = "other-secret"
	_, err = ValidateToken(bad, token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken(testConfig(), "not.a.token")
	assert.Error(t, err)
}
