// Package session holds the client's session state: a tagged union of
// loading, unauthenticated, and authenticated, where authenticated always
// carries both the bearer credential and the resolved user profile.
//
// The Store keeps that in-memory state consistent with durable credential
// storage (pkg/credstore) on every transition, and broadcasts state changes
// to subscribers so view code can re-render. It deliberately performs no
// network I/O; deciding when a session is established or torn down is the
// auth package's job.
package session
