package cache

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// KeySeparator delimits the segments of a cache key.
const KeySeparator = "::"

// PageKey derives the cache key for a raw pagination request. The format is
// intentionally transparent so keys are greppable in cache dumps.
func PageKey(limit, offset int) string {
	return fmt.Sprintf("users_%d_%d", limit, offset)
}

// Fingerprint derives a deterministic cache key for an arbitrary request
// value. The value is serialized to its canonical msgpack form and hashed
// with xxhash, so two requests share a key iff their operative fields are
// equal.
//
// The scope segment namespaces the key (e.g. "users_opts") and survives in
// clear text so prefix invalidation still works on hashed keys.
func Fingerprint(scope string, v any) (string, error) {
	payload, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", scope, err)
	}
	sum := xxhash.Sum64(payload)
	return scope + KeySeparator + strconv.FormatUint(sum, 16), nil
}
