// Package userquery implements the user retrieval pipeline: pagination,
// categorical filtering, composed option queries, result caching, telemetry
// and a closed error taxonomy.
//
// # Overview
//
// Service exposes four entry points, each a single unit of work:
//
//   - GetUsers: first page with the default page size
//   - GetUsersPage: raw pagination, cached under a transparent key
//   - GetUsersByFilter: categorical slices via a dispatch table, uncached
//   - GetUsersWithOptions: the composed path returning a Result envelope
//
// Every call runs the same four stages in order: parameter validation,
// cache lookup, fetch dispatch, post-processing. Post-processing always
// narrows the fetched set with the boolean filters before sorting, so the
// sort never sees raw fetch output.
//
// # Collaborators
//
// The repository is the only required collaborator. Cache store, telemetry
// tracker, record validator and logger are optional and default to
// fully functional no-op implementations, so a bare NewService(repo) is a
// valid production configuration.
//
// # Caching
//
// Pagination results are cached under "users_<limit>_<offset>" for five
// minutes. Option results are cached (when opts.UseCache is set) under an
// xxhash fingerprint of the canonical msgpack form of the operative option
// fields, with the caller's TTL. Cache failures are logged and treated as
// misses; they never fail a request. Concurrent identical requests are not
// deduplicated; both will fetch and the last write wins.
//
// # Errors
//
// Every error leaving a public entry point is normalized into the Kind
// taxonomy exactly once, at the boundary, after the failure telemetry event
// has been emitted. Callers match kinds with errors.As on *Error or the
// KindOf helper. No partial results accompany an error.
package userquery
