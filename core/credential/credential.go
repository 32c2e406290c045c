package credential

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sharp0802/humus/core/cipher"
)

// Token is the payload shared by both credential roles. Values are treated
// as immutable after construction; copy semantics keep it safe to pass
// around.
type Token struct {
	Who       string `json:"who"`
	Timestamp int64  `json:"timestamp"`
	Nonce     int64  `json:"nonce"`
}

// NewToken builds a payload for the subject stamped at the given instant,
// truncated to Unix seconds. The nonce is drawn from crypto/rand; a failing
// random source reports ErrEntropy.
func NewToken(who string, issuedAt time.Time) (Token, error) {
	nonce, err := randomNonce()
	if err != nil {
		return Token{}, err
	}

	return Token{
		Who:       who,
		Timestamp: issuedAt.Unix(),
		Nonce:     nonce,
	}, nil
}

// IssuedAt returns the stamp as a UTC time.
func (t Token) IssuedAt() time.Time {
	return time.Unix(t.Timestamp, 0).UTC()
}

// Encode serializes the payload to JSON and seals it under the passphrase.
// Two encodings of the same token differ because the cipher draws a fresh
// nonce per call.
func (t Token) Encode(passphrase string) (string, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return cipher.Encrypt(string(payload), passphrase)
}

// DecodeToken opens an envelope and parses the payload. Cipher failures
// pass through unchanged; a plaintext that is not a JSON object with the
// who, timestamp, and nonce keys returns ErrMalformed. Unknown keys are
// tolerated.
func DecodeToken(envelope, passphrase string) (Token, error) {
	plaintext, err := cipher.Decrypt(envelope, passphrase)
	if err != nil {
		return Token{}, err
	}

	var raw struct {
		Who       *string `json:"who"`
		Timestamp *int64  `json:"timestamp"`
		Nonce     *int64  `json:"nonce"`
	}
	if err := json.Unmarshal([]byte(plaintext), &raw); err != nil {
		return Token{}, ErrMalformed
	}
	if raw.Who == nil || raw.Timestamp == nil || raw.Nonce == nil {
		return Token{}, ErrMalformed
	}

	return Token{
		Who:       *raw.Who,
		Timestamp: *raw.Timestamp,
		Nonce:     *raw.Nonce,
	}, nil
}

// Access proves the subject's identity for the rotation window.
type Access struct {
	token Token
}

// NewAccess mints an access credential for the subject at the given instant.
func NewAccess(who string, issuedAt time.Time) (Access, error) {
	token, err := NewToken(who, issuedAt)
	if err != nil {
		return Access{}, err
	}
	return Access{token: token}, nil
}

// DecodeAccess opens an envelope as an access credential.
func DecodeAccess(envelope, passphrase string) (Access, error) {
	token, err := DecodeToken(envelope, passphrase)
	if err != nil {
		return Access{}, err
	}
	return Access{token: token}, nil
}

// Who returns the subject the credential was issued to.
func (a Access) Who() string { return a.token.Who }

// IssuedAt returns the issuance instant in UTC.
func (a Access) IssuedAt() time.Time { return a.token.IssuedAt() }

// Encode seals the credential under the passphrase.
func (a Access) Encode(passphrase string) (string, error) {
	return a.token.Encode(passphrase)
}

// Refresh extends a session past the rotation window until it expires.
type Refresh struct {
	token Token
}

// NewRefresh mints a refresh credential for the subject at the given instant.
func NewRefresh(who string, issuedAt time.Time) (Refresh, error) {
	token, err := NewToken(who, issuedAt)
	if err != nil {
		return Refresh{}, err
	}
	return Refresh{token: token}, nil
}

// DecodeRefresh opens an envelope as a refresh credential.
func DecodeRefresh(envelope, passphrase string) (Refresh, error) {
	token, err := DecodeToken(envelope, passphrase)
	if err != nil {
		return Refresh{}, err
	}
	return Refresh{token: token}, nil
}

// Who returns the subject the credential was issued to.
func (r Refresh) Who() string { return r.token.Who }

// IssuedAt returns the issuance instant in UTC.
func (r Refresh) IssuedAt() time.Time { return r.token.IssuedAt() }

// Encode seals the credential under the passphrase.
func (r Refresh) Encode(passphrase string) (string, error) {
	return r.token.Encode(passphrase)
}

// randomNonce draws a uniform 64-bit value from crypto/rand.
func randomNonce() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}
