package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/permissions"
)

// A capability a route requires, mapped onto the permission flags.
type Capability int

const (
	CapCreate Capability = iota
	CapRead
	CapUpdate
	CapDelete
)

// RequirePermission re-derives the grant decision server-side for a mutating
// route. pageURL is the frontend page the route belongs to (explicit
// route→page mapping, declared at registration); the client-side route guard
// runs the same resolution but is not trusted.
//
// Must sit behind RequireAuth so role claims are present. Missing page or
// permission rows deny.
func RequirePermission(pageURL string, cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID, ok := CurrentRoleID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in token"})
			return
		}

		matrix, err := permissions.Load(config.DB)
		if err != nil {
			logrus.WithError(err).Error("could not load permission matrix")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permission check unavailable"})
			return
		}

		decision := matrix.Resolve(roleID, pageURL)
		if !decision.Allowed || !capGranted(decision, cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

func capGranted(d permissions.Decision, cap Capability) bool {
	// Administrator decisions carry all four flags; the dashboard grant
	// carries none, which is fine: no mutating route maps to "/".
	switch cap {
	case CapCreate:
		return d.CanCreate
	case CapRead:
		return d.Allowed // page entry implies read access
	case CapUpdate:
		return d.CanUpdate
	case CapDelete:
		return d.CanDelete
	default:
		return false
	}
}
