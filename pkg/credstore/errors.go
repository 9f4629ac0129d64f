package credstore

import "errors"

var (
	// ErrNotFound indicates no credential is persisted
	ErrNotFound = errors.New("credstore.not_found")

	// ErrEmptyCredential indicates an attempt to persist an empty credential
	ErrEmptyCredential = errors.New("credstore.empty_credential")

	// ErrInvalidConfig indicates missing or invalid store configuration
	ErrInvalidConfig = errors.New("credstore.invalid_config")

	// ErrStorageFailed wraps backend I/O failures
	ErrStorageFailed = errors.New("credstore.storage_failed")
)
