package credential

import "errors"

var (
	// ErrMalformed is returned when a decrypted payload is not a JSON object
	// carrying the who, timestamp, and nonce keys.
	ErrMalformed = errors.New("malformed credential payload")

	// ErrEncode is returned when a credential payload cannot be serialized.
	ErrEncode = errors.New("failed to encode credential payload")

	// ErrEntropy is returned when the random source fails while drawing a
	// credential nonce. Like ErrEncode it signals a host fault, never a
	// problem with the presented credential.
	ErrEntropy = errors.New("credential entropy source failed")
)
