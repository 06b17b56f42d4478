package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	userID := primitive.NewObjectID()

	token, err := GenerateJWTToken("test-issuer", userID, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, userID, token.UserID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, userID.Hex(), claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	id := primitive.NewObjectID()
	tests := []struct {
		name     string
		issuer   string
		userID   primitive.ObjectID
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", id, time.Hour, "key"},
		{"nil user id", "iss", primitive.NilObjectID, time.Hour, "key"},
		{"zero duration", "iss", id, 0, "key"},
		{"empty key", "iss", id, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	userID := primitive.NewObjectID()
	generated, err := GenerateJWTToken("test-issuer", userID, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
	assert.Equal(t, generated.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	userID := primitive.NewObjectID()
	valid, err := GenerateJWTToken("real-issuer", userID, time.Hour, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("real-issuer", userID, -time.Second, "key")
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "wrong-key", "real-issuer")
		assert.Error(t, err)
	})
	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "key", "fake-issuer")
		assert.Error(t, err)
	})
	t.Run("expired", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(expired.SignedString, "key", "real-issuer")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", "key", "real-issuer")
		assert.Error(t, err)
	})
	t.Run("subject is not an object id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    "real-issuer",
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte("key"))
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(signed, "key", "real-issuer")
		assert.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("  bearer xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}
