package middleware

import (
	"errors"
	"net/http"
	"strings"

	"taskboard/internal/auth"

	"github.com/gin-gonic/gin"
)

// MemberKey is the context key holding the authenticated member name
const MemberKey = "member"

// JWTAuthMiddleware requires a bearer session token signed with secret
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	tokens := auth.NewTokens(secret, 0)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		member, err := tokens.ParseToken(tokenStr)
		if errors.Is(err, auth.ErrInvalidClaims) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid member in token"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(MemberKey, member)
		c.Next()
	}
}
