package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session tokens live for one hour. There is no refresh, rotation, or
// server-side revocation; expiry is the only termination mechanism.
const tokenTTL = time.Hour

var (
	// ErrTokenExpired means the signature checked out but the expiry passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers a bad signature, malformed input, or bad claims.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the JWT payload: the subject's user id plus the standard set.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with a process-wide HMAC
// secret. Safe for concurrent use.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Generate issues a signed token for the given user id, expiring in one hour.
func (m *TokenManager) Generate(userID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "summarizer-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate checks the signature and expiry of tokenString and returns the
// embedded user id. Expired and otherwise-invalid tokens are distinguished
// so callers can tell the user to log in again vs. reject the token outright.
func (m *TokenManager) Validate(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
