package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate(7)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Validate(token)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	// An expired token must be reported as expired, not merely invalid.
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "summarizer-api",
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret").Validate(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_UnexpectedSigningMethod(t *testing.T) {
	// alg=none style tokens must not pass verification.
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 42}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret").Validate(none)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
