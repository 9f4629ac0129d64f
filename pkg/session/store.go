package session

import (
	"context"
	"sync"

	"github.com/familydom/domkit/pkg/credstore"
	"github.com/familydom/domkit/pkg/marketplace"
)

// Store pairs the in-memory session state with its durable credential
// storage and keeps the two consistent: a session is only established in
// memory after its credential was written durably, so the in-memory state
// never reflects a credential durable storage does not hold. The reverse
// skew (durable credential, signed-out memory) can occur only when a clear
// partially fails, and resolves at the next startup.
//
// The store holds state; it performs no network I/O and makes no decisions
// about when transitions happen. That orchestration lives in the auth package.
type Store struct {
	mu    sync.RWMutex
	state State
	creds credstore.Store

	subMu  sync.Mutex
	subs   map[int]chan State
	nextID int
}

// NewStore creates a session store over the given durable credential storage.
// The initial state is loading: nothing is known until the persisted
// credential has been resolved.
func NewStore(creds credstore.Store) (*Store, error) {
	if creds == nil {
		return nil, ErrNoCredentialStore
	}
	return &Store{
		state: Loading(),
		creds: creds,
		subs:  make(map[int]chan State),
	}, nil
}

// State returns a snapshot of the current session state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Credential reads the persisted credential from durable storage. Returns
// credstore.ErrNotFound when no session was persisted.
func (s *Store) Credential(ctx context.Context) (string, error) {
	return s.creds.Load(ctx)
}

// SetSession persists the credential durably and, only once that succeeded,
// moves the in-memory state to authenticated. On a durable-storage failure
// the in-memory state is left untouched and the error is returned.
func (s *Store) SetSession(ctx context.Context, credential string, user *marketplace.UserProfile) error {
	next, err := Authenticated(credential, user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if err := s.creds.Save(ctx, credential); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.mu.Unlock()

	s.notify(next)
	return nil
}

// Clear removes the credential from durable storage and resets the in-memory
// state to unauthenticated. Valid from any state; clearing an already empty
// store succeeds.
//
// Unlike SetSession, the in-memory state drops even when the durable clear
// fails: a signed-out memory next to a leftover stored credential is safe
// (the next startup re-validates or removes it), while staying signed in on
// a credential the caller wanted gone is not. The durable error is still
// returned.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	err := s.creds.Clear(ctx)
	next := Unauthenticated()
	s.state = next
	s.mu.Unlock()

	s.notify(next)
	return err
}

// Subscribe registers a channel receiving every state change after the call.
// Slow consumers miss intermediate states rather than block transitions; the
// current state can always be re-read via State.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan State, 4)
	s.subs[id] = ch

	unsubscribe := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

func (s *Store) notify(state State) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- state:
		default:
			// Subscriber is behind; it re-reads State on its next cycle.
		}
	}
}
