package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/familydom/domkit/pkg/apiclient"
	"github.com/familydom/domkit/pkg/credstore"
	"github.com/familydom/domkit/pkg/session"
	"github.com/familydom/domkit/pkg/token"
)

const (
	loginFallback    = "Login failed"
	registerFallback = "Registration failed"
)

// Manager orchestrates the session lifecycle: restoring a persisted
// credential at startup, logging in and registering, and tearing sessions
// down. It is the only writer of session state.
//
// All operations are serialized by a single mutex. Two in-flight logins
// finishing out of order, or a logout racing the startup profile fetch,
// would otherwise leave the credential and the profile disagreeing; callers
// queue instead.
type Manager struct {
	client *apiclient.Client
	store  *session.Store
	log    *slog.Logger

	// expiryLeeway widens the local expiry check so a token about to die
	// mid-flight is treated as already stale.
	expiryLeeway time.Duration

	mu sync.Mutex
}

// New creates an auth manager over the given gateway client and session store.
func New(client *apiclient.Client, store *session.Store, opts ...Option) (*Manager, error) {
	if client == nil {
		return nil, ErrNoClient
	}
	if store == nil {
		return nil, ErrNoSessionStore
	}

	m := &Manager{
		client: client,
		store:  store,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Session returns a snapshot of the current session state.
func (m *Manager) Session() session.State {
	return m.store.State()
}

// Bootstrap resolves the persisted credential at startup. Without one the
// state settles at unauthenticated with no network call. With one, the
// profile is fetched: success establishes the session, any failure clears
// the credential and settles at unauthenticated (a stale credential has no
// visible form to report an error on, so the forced logout IS the error
// handling). Locally expired tokens are cleared without a network call.
func (m *Manager) Bootstrap(ctx context.Context) (session.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	credential, err := m.store.Credential(ctx)
	if err != nil {
		if !errors.Is(err, credstore.ErrNotFound) {
			m.log.WarnContext(ctx, "credential storage unreadable, starting signed out", "error", err)
		}
		return m.teardown(ctx)
	}

	if token.Expired(credential, m.expiryLeeway) {
		m.log.InfoContext(ctx, "persisted credential expired, starting signed out")
		return m.teardown(ctx)
	}

	m.client.SetCredential(credential)

	user, err := m.client.Profile(ctx)
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			m.log.InfoContext(ctx, "persisted credential rejected, starting signed out")
		} else {
			m.log.WarnContext(ctx, "profile refresh failed, starting signed out", "error", err)
		}
		return m.teardown(ctx)
	}

	if err := m.store.SetSession(ctx, credential, user); err != nil {
		state, _ := m.teardown(ctx)
		return state, err
	}

	m.log.InfoContext(ctx, "session restored", "user_id", user.ID, "user_type", string(user.UserType))
	return m.store.State(), nil
}

// Login establishes a session from the login form. On failure the session
// state is left exactly as it was and the returned *FlowError carries the
// server's message, falling back to "Login failed".
func (m *Manager) Login(ctx context.Context, email, password string) (session.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tok, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.log.InfoContext(ctx, "login rejected", "error", err)
		return m.store.State(), &FlowError{Message: apiclient.ErrorDetail(err, loginFallback), Err: err}
	}

	return m.establish(ctx, tok, loginFallback)
}

// Register creates an account and establishes its first session. Same
// contract as Login with fallback message "Registration failed".
func (m *Manager) Register(ctx context.Context, req apiclient.RegisterRequest) (session.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tok, err := m.client.Register(ctx, req)
	if err != nil {
		m.log.InfoContext(ctx, "registration rejected", "error", err)
		return m.store.State(), &FlowError{Message: apiclient.ErrorDetail(err, registerFallback), Err: err}
	}

	return m.establish(ctx, tok, registerFallback)
}

// Logout tears the session down: durable credential, in-memory state, and
// the gateway's configured credential. No network call is made; the server
// cannot veto a logout.
func (m *Manager) Logout(ctx context.Context) (session.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.teardown(ctx)
	if err == nil {
		m.log.InfoContext(ctx, "signed out")
	}
	return state, err
}

// establish turns a token response into a live session. The durable write
// happens before the gateway credential swap, so a crash in between leaves a
// persisted credential that the next Bootstrap re-validates.
func (m *Manager) establish(ctx context.Context, tok *apiclient.TokenResponse, fallback string) (session.State, error) {
	user := tok.User
	if err := m.store.SetSession(ctx, tok.AccessToken, &user); err != nil {
		m.log.ErrorContext(ctx, "failed to persist session", "error", err)
		return m.store.State(), &FlowError{Message: fallback, Err: err}
	}

	m.client.SetCredential(tok.AccessToken)
	m.log.InfoContext(ctx, "session established", "user_id", user.ID, "user_type", string(user.UserType))
	return m.store.State(), nil
}

func (m *Manager) teardown(ctx context.Context) (session.State, error) {
	m.client.ClearCredential()
	if err := m.store.Clear(ctx); err != nil {
		return m.store.State(), err
	}
	return m.store.State(), nil
}
