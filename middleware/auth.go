package middleware

import (
	"net/http"
	"strings"

	"partyplan/models"
	"partyplan/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware validates the hosted-auth bearer token and stores the
// resolved Identity in the request context. Handlers read it back with
// IdentityFrom; there is no ambient session state.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, email, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityKey, models.Identity{UserID: userID, Email: email})
		c.Next()
	}
}

// IdentityFrom returns the authenticated caller set by AuthMiddleware.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}
