// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/codescope-coders/codescope-rework/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	tokenCookie         = "token"
	adminCtx            = "adminClaims" // Key to store admin claims in context
)

// JWTAuthMiddleware creates a Gin middleware for admin authentication. The
// token is taken from the Authorization header, with a cookie fallback for
// browser sessions.
func JWTAuthMiddleware(admins services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			return
		}

		claims, err := admins.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
			return
		}

		c.Set(adminCtx, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader(authorizationHeader)
	if header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(tokenCookie); err == nil {
		return cookie
	}
	return ""
}

// GetAdminFromContext returns the authenticated admin's claims.
func GetAdminFromContext(c *gin.Context) (*services.AdminClaims, error) {
	claimsAny, exists := c.Get(adminCtx)
	if !exists {
		return nil, errors.New("admin claims not found in context")
	}
	claims, ok := claimsAny.(*services.AdminClaims)
	if !ok {
		return nil, errors.New("admin claims in context are of invalid type")
	}
	return claims, nil
}
