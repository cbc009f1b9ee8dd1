package middleware

import (
	"errors"
	"net/http"
	"strings"

	"TranscriptSummarizer_Backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context key under which the gate stores the authenticated user id.
const UserIDKey = "userID"

// Auth gates a route group on a valid bearer token. Outcomes:
//   - no Authorization header: 401, log-in-required message
//   - expired token: 401, distinct message so clients re-login
//   - anything else wrong with the token: 403
//   - valid: user id goes into the gin context and the handler runs
//
// The token is taken as the second space-delimited segment of the header;
// the scheme segment is not checked.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required. Please log in to access this resource.",
			})
			return
		}

		userID, err := tokens.Validate(bearerToken(header))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token expired. Please log in again.",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Invalid token. Please ensure you are logged in.",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// Splits on single spaces, so a run of spaces after the scheme yields an
// empty token rather than skipping ahead to the next segment.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
