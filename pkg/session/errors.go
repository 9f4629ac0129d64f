package session

import "errors"

var (
	// ErrIncompleteSession indicates an authenticated state without a
	// credential or profile
	ErrIncompleteSession = errors.New("session.incomplete")

	// ErrNoCredentialStore indicates the store was built without durable storage
	ErrNoCredentialStore = errors.New("session.no_credential_store")
)
