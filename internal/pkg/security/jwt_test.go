package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "Orion", claims.Issuer)
}

func TestValidateTokenTampered(t *testing.T) {
	token, err := GenerateToken(1, "startup")
	require.NoError(t, err)

	// 篡改签名段
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "forged-signature"

	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(7, "student")
	require.NoError(t, err)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(token, ".")[2], sig)

	_, err = ExtractSignature("two.parts")
	assert.Error(t, err)
}
