package session

import "errors"

var (
	// ErrNotConfigured is returned when a manager operation runs before a
	// configuration has been published.
	ErrNotConfigured = errors.New("session manager is not configured")
	// ErrNoPassphrase is returned when a configuration carries an empty
	// passphrase.
	ErrNoPassphrase = errors.New("session passphrase must not be empty")
	// ErrMissingCredential is returned when either session cookie is absent
	// from the request.
	ErrMissingCredential = errors.New("missing session credential")
	// ErrOwnerMismatch is returned when the two credentials of a pair were
	// issued to different subjects.
	ErrOwnerMismatch = errors.New("session credentials belong to different subjects")
	// ErrRefreshReused is returned when the refresh credential is newer than
	// its access credential, which indicates a cookie from a rotated-away
	// pair was replayed.
	ErrRefreshReused = errors.New("refresh credential is newer than its access credential")
	// ErrRefreshExpired is returned when the refresh credential is older
	// than RefreshLifetime and the session can no longer be extended.
	ErrRefreshExpired = errors.New("refresh credential has expired")
)
