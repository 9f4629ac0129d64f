package auth

import "errors"

var (
	// ErrNoClient indicates the manager was built without a gateway client
	ErrNoClient = errors.New("auth.no_client")

	// ErrNoSessionStore indicates the manager was built without a session store
	ErrNoSessionStore = errors.New("auth.no_session_store")
)

// FlowError is a failed login or registration, recovered at the controller
// boundary. Message is safe to show on the form: the server's detail when it
// sent one, a static per-operation fallback otherwise.
type FlowError struct {
	Message string
	Err     error
}

func (e *FlowError) Error() string {
	return e.Message
}

func (e *FlowError) Unwrap() error {
	return e.Err
}
