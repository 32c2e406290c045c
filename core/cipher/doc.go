// Package cipher provides authenticated encryption for short string payloads
// using AES-256-GCM with a passphrase-derived key.
//
// The key is derived by hashing the passphrase with SHA3-256, so any
// passphrase length is accepted and the same passphrase always yields the
// same key. Every encryption draws a fresh 12-byte nonce, meaning two
// encryptions of identical plaintext produce different envelopes.
//
// # Envelope Format
//
// The output of Encrypt is a single base64 string (standard alphabet,
// padded) covering:
//
//	nonce (12 bytes) || ciphertext || GCM tag (16 bytes)
//
// The envelope is self-contained: Decrypt needs only the envelope and the
// passphrase. There is no key identifier and no versioning; rotating the
// passphrase invalidates all outstanding envelopes.
//
// # Usage
//
//	import "github.com/Sharp0802/humus/core/cipher"
//
//	envelope, err := cipher.Encrypt(`{"user":"42"}`, passphrase)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	plaintext, err := cipher.Decrypt(envelope, passphrase)
//	switch {
//	case errors.Is(err, cipher.ErrAuthenticationFailed):
//		// Tampered, truncated, or encrypted under a different passphrase.
//	case errors.Is(err, cipher.ErrInvalidEnvelope):
//		// Not an envelope at all.
//	}
//
// Decryption failures are deliberately coarse: a wrong passphrase and a
// bit-flipped ciphertext are indistinguishable and both surface as
// ErrAuthenticationFailed.
package cipher
