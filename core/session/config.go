package session

// Config holds the startup configuration for the session manager.
//
// These two values are the whole tunable surface. The rotation window,
// refresh lifetime, and cookie names are constants of the credential
// contract, not configuration.
type Config struct {
	// Passphrase derives the AES-256 key protecting both session cookies.
	// Rotating it invalidates every outstanding pair.
	Passphrase string `env:"SESSION_PASSPHRASE,required"`

	// SecureCookie restricts the session cookies to HTTPS transport.
	// Disable only for local development over plain HTTP.
	SecureCookie bool `env:"SESSION_COOKIE_SECURE" envDefault:"true"`
}

// Validate reports whether the configuration can be published.
func (c Config) Validate() error {
	if c.Passphrase == "" {
		return ErrNoPassphrase
	}
	return nil
}
