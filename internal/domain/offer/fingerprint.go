package offer

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the hex SHA-256 of an external id. It is stored with each
// offer for auditing; uniqueness is enforced on (source, external_id) instead.
func Fingerprint(externalID string) string {
	sum := sha256.Sum256([]byte(externalID))
	return hex.EncodeToString(sum[:])
}
