package middleware

import (
	"net/http"

	"partyplan/database/repository/roles"

	"github.com/gin-gonic/gin"
)

const adminRole = "admin"

// AdminMiddleware gates admin routes by checking the caller's role in
// user_roles. It must run after AuthMiddleware.
func AdminMiddleware(roleRepo roles.RoleRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		isAdmin, err := roleRepo.HasRole(identity.UserID, adminRole)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify admin access"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
