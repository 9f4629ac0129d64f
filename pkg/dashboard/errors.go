package dashboard

import "errors"

var (
	// ErrNoClient indicates the loader was built without a gateway client
	ErrNoClient = errors.New("dashboard.no_client")

	// ErrNotAuthenticated indicates a load was attempted without a live session
	ErrNotAuthenticated = errors.New("dashboard.not_authenticated")
)
