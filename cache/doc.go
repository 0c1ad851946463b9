// Package cache provides the caching port and key derivation used by the
// user query pipeline.
//
// # Overview
//
// The package exports a small surface:
//
//   - Store: a key-value interface with per-entry TTLs
//   - Noop: a Store that caches nothing, so an absent cache is a valid setup
//   - PageKey / Fingerprint: deterministic cache key derivation
//   - Config / NewStore: the default in-process Store backed by sturdyc
//
// # Key Derivation Strategy
//
// Two key shapes exist. Raw pagination requests use a transparent
// "users_<limit>_<offset>" key so entries are easy to identify in cache
// dumps. Composed option requests are fingerprinted: the options value is
// serialized to canonical msgpack and hashed with xxhash. Hashing the
// serialized form (rather than concatenating formatted fields) guarantees
// that two semantically different option sets can never collide just because
// they happen to format identically.
//
// Every key keeps its scope segment ("users_opts", ...) in clear text, which
// is what prefix-based invalidation matches on.
//
// # Failure Semantics
//
// Store implementations may fail on Get and Set. The query pipeline never
// lets a cache failure break a request: failures are logged on a side
// channel and the call proceeds as a miss. Implementations should still
// return honest errors rather than hiding them.
//
// # Custom Stores
//
// Any backend that can honor per-entry expiry can implement Store. The
// default implementation lives in internal/cacheinfra and wraps a sturdyc
// client; see Config and NewStore.
package cache
