package utils // package utils provides helper functions for hashing and token generation

import (
	"crypto/rand"   // secure random number generation
	"encoding/hex"  // hex encoding of random bytes
)

// sessionTokenBytes controls the entropy of issued session tokens.
// 32 bytes encode to 64 hex characters.
const sessionTokenBytes = 32

// NewSessionToken returns a fresh opaque bearer token. The token is stored
// verbatim on the user record and replaced wholesale on the next signin, so
// there is no derived or signed structure to it: it is only ever compared
// for equality against the stored column.
func NewSessionToken() (string, error) {
	return randomHex(sessionTokenBytes)
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
