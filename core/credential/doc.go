// Package credential defines the encrypted claim carried by each session
// cookie: who the subject is, when the credential was issued, and a random
// nonce that makes every credential unique.
//
// # Wire Format
//
// A credential serializes to a compact JSON object before encryption:
//
//	{"who":"user-42","timestamp":1756080000,"nonce":8674665223082153551}
//
// The timestamp is Unix seconds in UTC. The nonce is a random 64-bit value
// drawn at construction; it carries no meaning beyond making two credentials
// for the same subject at the same second distinct. The JSON is encrypted
// with the cipher package, so the cookie value an agent sees is an opaque
// base64 envelope.
//
// Decoding requires all three keys to be present; extra keys are ignored.
//
// # Roles
//
// Access and Refresh wrap the same payload in distinct types so the two
// cookies of a session pair cannot be swapped in code. An Access credential
// proves the subject for the rotation window; a Refresh credential extends
// the session beyond it. Role is a compile-time property only: the wire
// format does not tag it, and telling the cookies apart is the job of the
// cookie names, not the payload.
package credential
