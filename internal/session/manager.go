package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tradiehq/tradiehq/internal/config"
)

const DefaultCookieName = "_thq_sid"

const cookieMaxAge = int(TTL / time.Second)

// Manager manages the signed session cookie. The domain is scoped to
// the production apex only in production so preview deployments cannot
// leak cookies across subdomains.
type Manager struct {
	cookieName string
	domain     string
	secure     bool
	codec      *Codec
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		domain:     cfg.SessionCookieDomain,
		secure:     cfg.AuthCookieSecure,
		codec:      NewCodec(cfg.SessionSecret),
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// ReadID returns the verified session id from the request cookie.
func (m *Manager) ReadID(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(raw) == "" {
		return "", false
	}
	id, err := m.codec.Decode(raw)
	if err != nil {
		return "", false
	}
	return id, true
}

func (m *Manager) Write(c *gin.Context, id string) {
	m.write(c, id, m.secure)
}

// WriteInsecure writes the cookie without the Secure flag. Demo and
// preview traffic is plain HTTP.
func (m *Manager) WriteInsecure(c *gin.Context, id string) {
	m.write(c, id, false)
}

func (m *Manager) write(c *gin.Context, id string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, m.codec.Encode(id), cookieMaxAge, "/", m.domain, secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", m.domain, m.secure, true)
}
