package buildcache

import (
	"crypto/sha1"
	"encoding/hex"
)

// Digest returns the cache key for src: the hex SHA1 of its bytes, the
// same hashing the teacher used for its staged-change checksums, now
// keying cached token vectors instead of diff payloads.
func Digest(src []byte) string {
	h := sha1.New()
	h.Write(src)
	return hex.EncodeToString(h.Sum(nil))
}
