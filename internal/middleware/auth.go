package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"streamfix/internal/pkg/jwt"
	"streamfix/internal/pkg/response"
)

// Auth verifies the bearer access token and puts the subject into the
// context as "user_id". Expired tokens get their own code so clients know to
// refresh instead of re-authenticating.
func Auth(signer *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		claims, err := signer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortError(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Access token expired")
				return
			}
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid access token")
			return
		}

		if claims.UserID == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token has no subject")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
