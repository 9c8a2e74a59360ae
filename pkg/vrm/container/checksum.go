package container

import (
	"crypto/sha256"
	"encoding/hex"
)

const checksumPrefix = "sha256:"

// Checksum returns the prefixed digest of raw container bytes,
// e.g. "sha256:c0ffee...".
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return checksumPrefix + hex.EncodeToString(sum[:])
}
