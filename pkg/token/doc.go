// Package token inspects bearer credentials issued by the marketplace API.
//
// The API issues HS256 JWTs with a short expiry. This client holds no signing
// key and therefore never verifies tokens; it only reads the exp claim to
// avoid spending a network round-trip on a credential the server is certain
// to reject. Anything this package reports is advisory — the server remains
// the sole authority on credential validity.
package token
