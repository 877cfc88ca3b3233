package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// DeriveKey returns the on-disk file name for a remote path: the hex SHA-256
// of the path bytes. The derivation is a pure function, so a cold cache and a
// warm cache agree on layout and the mapping from remote path to cache file is
// reconstructible without any index.
func DeriveKey(remotePath string) string {
	sum := sha256.Sum256([]byte(remotePath))
	return hex.EncodeToString(sum[:])
}
