package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familydom/domkit/pkg/apiclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty base URL", func(t *testing.T) {
		t.Parallel()

		_, err := apiclient.New("")
		assert.ErrorIs(t, err, apiclient.ErrInvalidBaseURL)
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		t.Parallel()

		_, err := apiclient.New("ftp://example.com")
		assert.ErrorIs(t, err, apiclient.ErrInvalidBaseURL)
	})

	t.Run("accepts https", func(t *testing.T) {
		t.Parallel()

		_, err := apiclient.New("https://api.familydom.ma")
		assert.NoError(t, err)
	})
}

func TestClient_Do(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("prefixes api path and decodes response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/profile", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u-1"}`))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)

		var out struct {
			ID string `json:"id"`
		}
		require.NoError(t, client.Do(ctx, http.MethodGet, "/profile", nil, &out))
		assert.Equal(t, "u-1", out.ID)
	})

	t.Run("attaches bearer credential once configured", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)

		require.NoError(t, client.Do(ctx, http.MethodGet, "/profile", nil, nil))
		assert.Empty(t, gotAuth, "no credential configured yet")

		client.SetCredential("T")
		require.NoError(t, client.Do(ctx, http.MethodGet, "/profile", nil, nil))
		assert.Equal(t, "Bearer T", gotAuth)

		client.ClearCredential()
		require.NoError(t, client.Do(ctx, http.MethodGet, "/profile", nil, nil))
		assert.Empty(t, gotAuth, "credential cleared")
	})

	t.Run("surfaces server detail on non-2xx", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)

		err = client.Do(ctx, http.MethodPost, "/auth/login", map[string]string{"email": "a@b.com"}, nil)

		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Incorrect email or password", apiErr.Detail)
		assert.True(t, apiclient.IsUnauthorized(err))
	})

	t.Run("non-string detail stays generic", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"field required"}]}`))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)

		err = client.Do(ctx, http.MethodPost, "/auth/register", nil, nil)

		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Empty(t, apiErr.Detail)
		assert.Equal(t, "Registration failed", apiclient.ErrorDetail(err, "Registration failed"))
	})

	t.Run("network failure wraps ErrNetwork", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing listens anymore

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)

		err = client.Do(ctx, http.MethodGet, "/profile", nil, nil)
		assert.ErrorIs(t, err, apiclient.ErrNetwork)
		assert.False(t, apiclient.IsUnauthorized(err))
	})

	t.Run("malformed success body wraps ErrDecode", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": `))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)

		var out map[string]any
		err = client.Do(ctx, http.MethodGet, "/profile", nil, &out)
		assert.ErrorIs(t, err, apiclient.ErrDecode)
	})
}

func TestErrorDetail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid credentials",
		apiclient.ErrorDetail(&apiclient.APIError{StatusCode: 401, Detail: "Invalid credentials"}, "Login failed"))
	assert.Equal(t, "Login failed",
		apiclient.ErrorDetail(&apiclient.APIError{StatusCode: 500}, "Login failed"))
	assert.Equal(t, "Login failed",
		apiclient.ErrorDetail(apiclient.ErrNetwork, "Login failed"))
}
