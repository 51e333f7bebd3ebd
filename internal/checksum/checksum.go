// Package checksum computes content digests of emitted documents. The
// digest is logged after each conversion so that repeated runs over the
// same input can be compared without diffing the files.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// Digest returns the hex-encoded SHA-256 digest of data.
func Digest(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// DigestReader returns the hex-encoded SHA-256 digest of everything read
// from r.
func DigestReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("checksum: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
