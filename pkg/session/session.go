package session

import "github.com/familydom/domkit/pkg/marketplace"

// Status is the lifecycle phase of the client session.
type Status string

const (
	// StatusLoading is the initial phase, before the persisted credential has
	// been resolved against the server.
	StatusLoading Status = "loading"

	// StatusUnauthenticated means no live session exists.
	StatusUnauthenticated Status = "unauthenticated"

	// StatusAuthenticated means a credential and its resolved profile are
	// both present.
	StatusAuthenticated Status = "authenticated"
)

// State is the tagged union driving the whole client: exactly one of the
// three statuses, where authenticated additionally carries the credential and
// the resolved user profile. Values are immutable snapshots; mutate sessions
// only through the Store.
type State struct {
	Status     Status
	Credential string
	User       *marketplace.UserProfile
}

// Loading returns the initial state.
func Loading() State {
	return State{Status: StatusLoading}
}

// Unauthenticated returns the signed-out state.
func Unauthenticated() State {
	return State{Status: StatusUnauthenticated}
}

// Authenticated builds a live session state. The credential and profile must
// both be present: an authenticated state without either would break the
// invariant every consumer relies on.
func Authenticated(credential string, user *marketplace.UserProfile) (State, error) {
	if credential == "" || user == nil {
		return State{}, ErrIncompleteSession
	}
	return State{
		Status:     StatusAuthenticated,
		Credential: credential,
		User:       user,
	}, nil
}

// IsAuthenticated reports whether the state carries a live session.
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}
