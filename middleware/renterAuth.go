package middleware

import (
	"net/http"
	"strings"

	"rentride/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthRenterMiddleware guards routes that act on behalf of a renter.
// On success the token's subject is stored in the gin context under
// "renterID" for the handlers downstream.
func JWTAuthRenterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c)
			return
		}

		renterID, err := utils.ExtractIDFromToken(token)
		if err != nil || renterID == "" {
			unauthorized(c)
			return
		}

		c.Set("renterID", renterID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
	})
}
