package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/familydom/domkit/pkg/marketplace"
)

// BookingRequest carries a client's booking order. The server resolves the
// hourly rate and computes the total price.
type BookingRequest struct {
	ProviderID      string                      `json:"provider_id"`
	ServiceCategory marketplace.ServiceCategory `json:"service_category"`
	ScheduledDate   time.Time                   `json:"scheduled_date"`
	DurationHours   int                         `json:"duration_hours"`
	Address         string                      `json:"address"`
	Notes           string                      `json:"notes,omitempty"`
}

// Bookings fetches the caller's bookings. The server scopes the list by
// role: clients get their orders, providers the requests addressed to them.
// The client never filters.
func (c *Client) Bookings(ctx context.Context) ([]marketplace.Booking, error) {
	var bookings []marketplace.Booking
	if err := c.Do(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking places a booking order. Client accounts only.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*marketplace.Booking, error) {
	var booking marketplace.Booking
	if err := c.Do(ctx, http.MethodPost, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus moves a booking to a new status. The server checks
// that the caller is a party to the booking. The status travels as a query
// parameter, matching the API's contract.
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, status marketplace.BookingStatus) error {
	path := "/bookings/" + url.PathEscape(bookingID) + "/status?status=" + url.QueryEscape(string(status))
	return c.Do(ctx, http.MethodPut, path, nil, nil)
}
