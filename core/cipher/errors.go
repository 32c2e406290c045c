package cipher

import "errors"

var (
	// ErrInvalidEnvelope indicates the value is not a well-formed envelope:
	// either the base64 decoding failed or the payload is too short to
	// contain a nonce.
	ErrInvalidEnvelope = errors.New("invalid cipher envelope")

	// ErrAuthenticationFailed indicates the GCM tag check rejected the
	// ciphertext, due to tampering, truncation, or a wrong passphrase.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrInvalidPlaintext indicates decryption succeeded but the recovered
	// bytes are not valid UTF-8 text.
	ErrInvalidPlaintext = errors.New("decrypted payload is not valid UTF-8")
)
