package dashboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familydom/domkit/pkg/apiclient"
	"github.com/familydom/domkit/pkg/dashboard"
	"github.com/familydom/domkit/pkg/marketplace"
	"github.com/familydom/domkit/pkg/session"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, dashboard.ScreenLoading, dashboard.Resolve(session.Loading()))
	assert.Equal(t, dashboard.ScreenAuth, dashboard.Resolve(session.Unauthenticated()))

	authenticated, err := session.Authenticated("tok", &marketplace.UserProfile{ID: "u-1", UserType: marketplace.UserTypeClient})
	require.NoError(t, err)
	assert.Equal(t, dashboard.ScreenDashboard, dashboard.Resolve(authenticated))
}

type fetchCounts struct {
	providers atomic.Int64
	bookings  atomic.Int64
}

func newDashboardBackend(t *testing.T, providersBody, bookingsBody string, failProviders bool) (*apiclient.Client, *fetchCounts) {
	t.Helper()

	counts := &fetchCounts{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/providers":
			counts.providers.Add(1)
			if failProviders {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"detail": "boom"}`))
				return
			}
			_, _ = w.Write([]byte(providersBody))
		case "/api/bookings":
			counts.bookings.Add(1)
			_, _ = w.Write([]byte(bookingsBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)
	client.SetCredential("tok")

	return client, counts
}

func authState(t *testing.T, userType marketplace.UserType) session.State {
	t.Helper()

	state, err := session.Authenticated("tok", &marketplace.UserProfile{ID: "u-1", UserType: userType})
	require.NoError(t, err)
	return state
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	providersBody := `[{"provider_profile": {"id": "p-1"}, "user_info": {"full_name": "Amina B."}}]`
	bookingsBody := `[{"id": "b-1", "status": "pending"}]`

	t.Run("client role fetches providers exactly once", func(t *testing.T) {
		t.Parallel()

		client, counts := newDashboardBackend(t, providersBody, bookingsBody, false)
		loader, err := dashboard.NewLoader(client)
		require.NoError(t, err)

		data, err := loader.Load(ctx, authState(t, marketplace.UserTypeClient))
		require.NoError(t, err)

		assert.Len(t, data.Providers, 1)
		assert.Len(t, data.Bookings, 1)
		assert.EqualValues(t, 1, counts.providers.Load())
		assert.EqualValues(t, 1, counts.bookings.Load())
	})

	t.Run("provider role never fetches the provider directory", func(t *testing.T) {
		t.Parallel()

		client, counts := newDashboardBackend(t, providersBody, bookingsBody, false)
		loader, err := dashboard.NewLoader(client)
		require.NoError(t, err)

		data, err := loader.Load(ctx, authState(t, marketplace.UserTypeProvider))
		require.NoError(t, err)

		assert.Empty(t, data.Providers)
		assert.Len(t, data.Bookings, 1)
		assert.Zero(t, counts.providers.Load())
		assert.EqualValues(t, 1, counts.bookings.Load())
	})

	t.Run("fetch failures degrade to empty lists", func(t *testing.T) {
		t.Parallel()

		client, _ := newDashboardBackend(t, providersBody, bookingsBody, true)
		loader, err := dashboard.NewLoader(client)
		require.NoError(t, err)

		data, err := loader.Load(ctx, authState(t, marketplace.UserTypeClient))
		require.NoError(t, err, "listing failures must not surface")

		assert.NotNil(t, data.Providers)
		assert.Empty(t, data.Providers)
		assert.Len(t, data.Bookings, 1)
	})

	t.Run("rejects unauthenticated state", func(t *testing.T) {
		t.Parallel()

		client, _ := newDashboardBackend(t, providersBody, bookingsBody, false)
		loader, err := dashboard.NewLoader(client)
		require.NoError(t, err)

		_, err = loader.Load(ctx, session.Unauthenticated())
		assert.ErrorIs(t, err, dashboard.ErrNotAuthenticated)

		_, err = loader.Load(ctx, session.Loading())
		assert.ErrorIs(t, err, dashboard.ErrNotAuthenticated)
	})
}

func TestNewLoader(t *testing.T) {
	t.Parallel()

	_, err := dashboard.NewLoader(nil)
	assert.ErrorIs(t, err, dashboard.ErrNoClient)
}
