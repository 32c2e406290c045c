package session

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Sharp0802/humus/core/credential"
)

const defaultCookiePath = "/"

// Manager loads session pairs from requests and saves them to responses.
// Configuration is published once with NewManager or Configure and read
// lock-free on every request; the zero value is usable but rejects every
// operation with ErrNotConfigured until configured.
type Manager struct {
	config atomic.Pointer[Config]

	// Cookie policy. Zero values fall back to path "/" and SameSite Lax
	// when cookies are built.
	path     string
	domain   string
	sameSite http.SameSite
}

// NewManager validates the configuration, applies cookie policy options,
// and returns a configured manager.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.Configure(cfg); err != nil {
		return nil, err
	}

	return m, nil
}

// Configure validates and publishes a configuration, replacing any earlier
// one. It is safe to call concurrently with in-flight loads; requests see
// either the old configuration or the new one, never a mix.
func (m *Manager) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	m.config.Store(&cfg)
	return nil
}

// conf returns the published configuration or ErrNotConfigured.
func (m *Manager) conf() (*Config, error) {
	cfg := m.config.Load()
	if cfg == nil {
		return nil, ErrNotConfigured
	}
	return cfg, nil
}

// Load extracts and validates the session pair carried by the request.
//
// The checks run in a fixed order and the first failure wins: cookie
// presence, credential decoding (access before refresh), owner agreement,
// refresh reuse, refresh expiry. A pair that passes every check is
// returned as is while its access credential is younger than
// RotationWindow; an older pair is replaced by a fresh one for the same
// subject, stamped at load time, with Rotated reporting the replacement.
func (m *Manager) Load(r *http.Request) (Session, error) {
	accessCookie, err := r.Cookie(AccessCookieName)
	if err != nil {
		return Session{}, ErrMissingCredential
	}

	refreshCookie, err := r.Cookie(RefreshCookieName)
	if err != nil {
		return Session{}, ErrMissingCredential
	}

	cfg, err := m.conf()
	if err != nil {
		return Session{}, err
	}

	access, err := credential.DecodeAccess(accessCookie.Value, cfg.Passphrase)
	if err != nil {
		return Session{}, fmt.Errorf("decode access credential: %w", err)
	}

	refresh, err := credential.DecodeRefresh(refreshCookie.Value, cfg.Passphrase)
	if err != nil {
		return Session{}, fmt.Errorf("decode refresh credential: %w", err)
	}

	if access.Who() != refresh.Who() {
		return Session{}, ErrOwnerMismatch
	}

	if refresh.IssuedAt().After(access.IssuedAt()) {
		return Session{}, ErrRefreshReused
	}

	now := time.Now().UTC()
	if now.Sub(refresh.IssuedAt()) > RefreshLifetime {
		return Session{}, ErrRefreshExpired
	}

	if now.Sub(access.IssuedAt()) > RotationWindow {
		rotated, err := newAt(access.Who(), now)
		if err != nil {
			return Session{}, err
		}
		rotated.rotated = true
		return rotated, nil
	}

	return Session{access: access, refresh: refresh}, nil
}

// Save encodes both credentials and sets both session cookies on the
// response. Each call re-encrypts, so cookie values change even when the
// pair does not; the decoded payloads stay identical.
func (m *Manager) Save(w http.ResponseWriter, sess Session) error {
	cfg, err := m.conf()
	if err != nil {
		return err
	}

	accessValue, err := sess.access.Encode(cfg.Passphrase)
	if err != nil {
		return fmt.Errorf("encode access credential: %w", err)
	}

	refreshValue, err := sess.refresh.Encode(cfg.Passphrase)
	if err != nil {
		return fmt.Errorf("encode refresh credential: %w", err)
	}

	http.SetCookie(w, m.cookie(AccessCookieName, accessValue, cfg.SecureCookie))
	http.SetCookie(w, m.cookie(RefreshCookieName, refreshValue, cfg.SecureCookie))
	return nil
}

// Clear expires both session cookies. It works on an unconfigured manager
// so logout paths stay available during partial startup; without a
// configuration the Secure attribute defaults to off.
func (m *Manager) Clear(w http.ResponseWriter) {
	secure := false
	if cfg := m.config.Load(); cfg != nil {
		secure = cfg.SecureCookie
	}

	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		cookie := m.cookie(name, "", secure)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		http.SetCookie(w, cookie)
	}
}

// cookie builds a session cookie with the manager's policy applied.
// HttpOnly is unconditional: credentials are never readable from scripts.
func (m *Manager) cookie(name, value string, secure bool) *http.Cookie {
	path := m.path
	if path == "" {
		path = defaultCookiePath
	}

	sameSite := m.sameSite
	if sameSite == 0 {
		sameSite = http.SameSiteLaxMode
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   m.domain,
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	}
}
