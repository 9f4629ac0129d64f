// Package credstore persists the session's bearer credential across process
// restarts.
//
// The durable state of a session is exactly one string: the raw token. The
// Store interface models that single entry with Load/Save/Clear semantics;
// three backends are provided:
//
//   - FileStore: default, one 0600 file with atomic replace
//   - MemoryStore: tests and explicitly ephemeral sessions
//   - RedisStore: processes sharing one session, optional TTL
//
// Consistency with the in-memory session state is the responsibility of the
// session package; stores only guarantee that Load observes either the
// previous or the new credential, never a partial write.
package credstore
