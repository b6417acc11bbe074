package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns the first n hex characters of the input's hash.
// It identifies personal values in logs without recording them.
func Fingerprint(input string, n int) string {
	hash := HashString(input)
	if n <= 0 || n > len(hash) {
		return hash
	}
	return hash[:n]
}
