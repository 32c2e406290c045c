package session

import (
	"time"

	"github.com/Sharp0802/humus/core/credential"
)

// Cookie names carrying the two credentials of a pair.
const (
	AccessCookieName  = "__HT_ACCESS_TOKEN"
	RefreshCookieName = "__HT_REFRESH_TOKEN"
)

// Validation horizons. Both are fixed properties of the credential contract
// rather than configuration: peers that disagree on them cannot interpret
// each other's pairs.
const (
	// RotationWindow is how long an access credential stays fresh. A valid
	// pair whose access credential is older gets replaced on load.
	RotationWindow = 15 * time.Minute

	// RefreshLifetime is how long a refresh credential can extend a session.
	// A pair whose refresh credential is older cannot be rotated and the
	// subject must authenticate again.
	RefreshLifetime = 90 * 24 * time.Hour
)

// Session is a validated access/refresh credential pair for one subject.
// Sessions are values; loading never mutates the pair a request carried,
// it returns either the same pair or a freshly minted replacement.
type Session struct {
	access  credential.Access
	refresh credential.Refresh

	// rotated records that the loading pipeline replaced the original pair.
	rotated bool
}

// New mints a session for the subject with both credentials stamped at the
// same instant.
func New(who string) (Session, error) {
	return newAt(who, time.Now().UTC())
}

// newAt mints a pair stamped at the given instant. Rotation uses it to
// issue replacements stamped at load time.
func newAt(who string, issuedAt time.Time) (Session, error) {
	access, err := credential.NewAccess(who, issuedAt)
	if err != nil {
		return Session{}, err
	}

	refresh, err := credential.NewRefresh(who, issuedAt)
	if err != nil {
		return Session{}, err
	}

	return Session{access: access, refresh: refresh}, nil
}

// Who returns the subject both credentials were issued to.
func (s Session) Who() string { return s.access.Who() }

// Access returns the access credential of the pair.
func (s Session) Access() credential.Access { return s.access }

// Refresh returns the refresh credential of the pair.
func (s Session) Refresh() credential.Refresh { return s.refresh }

// Rotated reports whether this session replaced the pair the request
// carried. A rotated session must be saved to the response or the client
// keeps its aging pair.
func (s Session) Rotated() bool { return s.rotated }
