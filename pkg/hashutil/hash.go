// Package hashutil provides the block-hashing primitive: a lowercase
// hex-encoded SHA-256 digest with a fixed "0x" prefix.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the "0x"-prefixed lowercase hex SHA-256 digest of data.
//
// The algorithm is fixed by the block-hashing contract, not a library
// choice: every hash in this system, transport or internal, must be
// reproducible byte for byte by any compatible implementation, so this
// stays on crypto/sha256 rather than swapping in a faster non-standard
// digest.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return "0x" + hex.EncodeToString(sum[:])
}
