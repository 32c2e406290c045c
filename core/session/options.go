package session

import "net/http"

// Option adjusts the manager's cookie policy. The credential contract pins
// the cookie names and HttpOnly; everything else about cookie placement
// belongs to the embedding application.
type Option func(*Manager)

// WithCookiePath sets the path attribute of both session cookies.
// Defaults to "/".
func WithCookiePath(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.path = path
		}
	}
}

// WithCookieDomain sets the domain attribute of both session cookies.
// Empty means host-only, which is the default.
func WithCookieDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

// WithSameSite sets the SameSite attribute of both session cookies.
// Defaults to Lax; pass http.SameSiteDefaultMode to omit the attribute.
func WithSameSite(mode http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = mode
	}
}
