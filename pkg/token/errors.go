package token

import "errors"

var (
	// ErrEmptyCredential indicates an empty credential string
	ErrEmptyCredential = errors.New("token.empty_credential")

	// ErrMalformedCredential indicates the credential is not a parseable JWT
	ErrMalformedCredential = errors.New("token.malformed_credential")

	// ErrNoExpiry indicates the credential carries no exp claim
	ErrNoExpiry = errors.New("token.no_expiry")
)
