package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"authservice/internal/session"
	"authservice/pkg/helpers"
)

const principalKey = "principal"

// ResolveSession resolves the session cookie into an immutable Principal
// once per request. It never rejects: requests without a valid session
// simply proceed anonymous. Store failures are logged and treated as
// anonymous rather than failing reads that may not need auth at all.
func ResolveSession(store session.Store, cookies *helpers.Manager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookies.Token(c)
		if token != "" {
			p, found, err := store.Get(c.Request.Context(), token)
			if err != nil {
				helpers.LogError(logger, "session resolve failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
			} else if found {
				c.Set(principalKey, p)
			}
		}
		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal for the request, if any.
func PrincipalFrom(c *gin.Context) (session.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return session.Principal{}, false
	}
	p, ok := v.(session.Principal)
	return p, ok
}
