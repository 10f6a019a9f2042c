package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("exam-platform", "student-17", time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "student-17", token.UserID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "exam-platform", claims.Issuer)
	assert.Equal(t, "student-17", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name, issuer, userID, key string
		duration                  time.Duration
	}{
		{name: "no issuer", userID: "u", key: "k", duration: time.Hour},
		{name: "no user", issuer: "i", key: "k", duration: time.Hour},
		{name: "no key", issuer: "i", userID: "u", duration: time.Hour},
		{name: "no duration", issuer: "i", userID: "u", key: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	signed, err := GenerateJWTToken("exam-platform", "u1", time.Hour, "secret")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		token, err := ValidateAndParseJWTToken(signed.SignedString, "secret", "exam-platform")
		require.NoError(t, err)
		assert.Equal(t, "u1", token.UserID)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(signed.SignedString, "other", "exam-platform")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(signed.SignedString, "secret", "someone-else")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.jwt", "secret", "exam-platform")
		assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
	})
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	signed, err := GenerateJWTToken("exam-platform", "u1", -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed.SignedString, "secret", "exam-platform")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	signed, err := GenerateJWTToken("exam-platform", "student-9", time.Hour, "whatever")
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(signed.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "student-9", id)

	_, err = ParseUserIDFromJWT("garbage")
	assert.Error(t, err)
}
