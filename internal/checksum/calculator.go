package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes content digests for reported files.
type Calculator interface {
	// Digest returns a hex-encoded digest of the raw content.
	Digest(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Digest computes the SHA-256 of content, prefixed with the algorithm name
// so reports stay self-describing.
func (c SHA256) Digest(content []byte) string {
	hash := sha256.Sum256(content)
	return "sha256:" + hex.EncodeToString(hash[:])
}
