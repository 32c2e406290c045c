package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/sha3"
)

// newGCM derives the AES-256 key from the passphrase and constructs the AEAD.
func newGCM(passphrase string) (cipher.AEAD, error) {
	key := sha3.Sum256([]byte(passphrase))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// Encrypt seals plaintext under the passphrase-derived key and returns the
// base64 envelope. Every call uses a fresh random nonce, so repeated calls
// with identical inputs produce distinct envelopes.
func Encrypt(plaintext, passphrase string) (string, error) {
	gcm, err := newGCM(passphrase)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens an envelope produced by Encrypt and returns the plaintext.
// It returns ErrInvalidEnvelope for values that cannot carry a nonce,
// ErrAuthenticationFailed when the tag check rejects the ciphertext, and
// ErrInvalidPlaintext when the recovered bytes are not UTF-8 text.
func Decrypt(envelope, passphrase string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", ErrInvalidEnvelope
	}

	gcm, err := newGCM(passphrase)
	if err != nil {
		return "", err
	}

	if len(data) < gcm.NonceSize() {
		return "", ErrInvalidEnvelope
	}

	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	if !utf8.Valid(plaintext) {
		return "", ErrInvalidPlaintext
	}

	return string(plaintext), nil
}
