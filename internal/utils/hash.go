package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 hashers keyed with the integrity hash key.
// Must be initialized via InitHasherPool before Hash is used.
var hasherPool sync.Pool

// InitHasherPool (re)creates the pool for hashKey.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the HMAC-SHA256 of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex is Hash encoded as lowercase hex, the form sent in the HashSHA256 header.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// ValidHash reports whether hexSum is the HMAC of data under the pooled key.
func ValidHash(data []byte, hexSum string) bool {
	want, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}
	return hmac.Equal(Hash(data), want)
}

// HashString hashes data with a one-off HMAC instead of the pool.
func HashString(data string, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
