package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Manager writes and clears the session cookie. The cookie only carries an
// opaque token; the session itself lives server-side.
type Manager struct {
	Name   string
	Domain string
	Secure bool
	MaxAge time.Duration
}

func NewCookie(name, domain string, secure bool, maxAge time.Duration) *Manager {
	return &Manager{Name: name, Domain: domain, Secure: secure, MaxAge: maxAge}
}

// SetSession stores the session token as an HTTP-only cookie.
func (m *Manager) SetSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, token, int(m.MaxAge.Seconds()), "/", m.Domain, m.Secure, true)
}

// Clear expires the session cookie.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, "", -1, "/", m.Domain, m.Secure, true)
}

// Token returns the session token carried by the request, or "" when the
// cookie is absent.
func (m *Manager) Token(c *gin.Context) string {
	v, err := c.Cookie(m.Name)
	if err != nil {
		return ""
	}
	return v
}
