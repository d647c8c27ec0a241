package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/pkg/helpers"
)

const ctxIdentityKey = "identity"

// ResolveIdentity resolves the session cookie into an Identity and stores
// it in the Gin context for every request. Missing or invalid sessions
// resolve to Anonymous; it never aborts. Handlers decide what an
// anonymous caller may do via the authorization gate.
func ResolveIdentity(sessions *application.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(helpers.SessionCookieName)
		id := sessions.Current(c.Request.Context(), token)
		c.Set(ctxIdentityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the identity resolved for this request, or
// Anonymous when the middleware did not run.
func IdentityFrom(c *gin.Context) application.Identity {
	if v, ok := c.Get(ctxIdentityKey); ok {
		if id, ok := v.(application.Identity); ok {
			return id
		}
	}
	return application.Anonymous
}

// SetIdentity injects an identity directly; used by tests.
func SetIdentity(c *gin.Context, id application.Identity) {
	c.Set(ctxIdentityKey, id)
}
