package dashboard

import (
	"context"
	"io"
	"log/slog"

	"github.com/familydom/domkit/pkg/apiclient"
	"github.com/familydom/domkit/pkg/async"
	"github.com/familydom/domkit/pkg/marketplace"
	"github.com/familydom/domkit/pkg/session"
)

// Data is everything the dashboard renders. Slices are never nil: a failed
// or skipped fetch shows as an empty list, not an error state.
type Data struct {
	Providers []marketplace.ProviderListing
	Bookings  []marketplace.Booking
}

// Loader fetches the dashboard's data for an authenticated session.
type Loader struct {
	client *apiclient.Client
	log    *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger for degraded fetches; nil loggers are ignored.
func WithLogger(log *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader creates a dashboard loader over the gateway client.
func NewLoader(client *apiclient.Client, opts ...LoaderOption) (*Loader, error) {
	if client == nil {
		return nil, ErrNoClient
	}

	l := &Loader{
		client: client,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Load fetches the dashboard data for the given session. Bookings are always
// fetched; the provider directory only for client accounts, since providers
// browse incoming requests rather than other providers. The two fetches run
// concurrently.
//
// Listing failures degrade: they are logged and the affected list stays
// empty. The dashboard renders either way.
func (l *Loader) Load(ctx context.Context, state session.State) (*Data, error) {
	if !state.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	bookingsFuture := async.Run(ctx, func(ctx context.Context) ([]marketplace.Booking, error) {
		return l.client.Bookings(ctx)
	})

	var providersFuture *async.Future[[]marketplace.ProviderListing]
	if state.User.UserType == marketplace.UserTypeClient {
		providersFuture = async.Run(ctx, func(ctx context.Context) ([]marketplace.ProviderListing, error) {
			return l.client.Providers(ctx, apiclient.ProviderFilter{})
		})
	}

	data := &Data{
		Providers: []marketplace.ProviderListing{},
		Bookings:  []marketplace.Booking{},
	}

	if bookings, err := bookingsFuture.Await(); err != nil {
		l.log.WarnContext(ctx, "bookings fetch failed, showing empty list", "error", err)
	} else if bookings != nil {
		data.Bookings = bookings
	}

	if providersFuture != nil {
		if providers, err := providersFuture.Await(); err != nil {
			l.log.WarnContext(ctx, "provider listing fetch failed, showing empty list", "error", err)
		} else if providers != nil {
			data.Providers = providers
		}
	}

	return data, nil
}
