package middleware

import (
	"net/http"
	"strings"

	"onlinelibrary/internal/pkg/jwt"
	"onlinelibrary/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and stores the caller identity on
// the context. The role claim is always stored; "user_id" is stored only
// when the subject claim parses as an integer, so handlers that need the
// caller id can treat its absence as unauthorized.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		if userID, err := claims.UserID(); err == nil {
			c.Set("user_id", userID)
		}
		c.Set("role", claims.Role)

		c.Next()
	}
}
