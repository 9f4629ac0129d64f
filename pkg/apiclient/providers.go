package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/familydom/domkit/pkg/marketplace"
)

// ProviderFilter narrows the provider directory. Zero values mean "no
// filter"; the server caps the result size when Limit is unset.
type ProviderFilter struct {
	Service marketplace.ServiceCategory
	City    string
	Limit   int
}

func (f ProviderFilter) query() string {
	params := url.Values{}
	if f.Service != "" {
		params.Set("service", string(f.Service))
	}
	if f.City != "" {
		params.Set("city", f.City)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// Providers fetches the provider directory, optionally filtered.
func (c *Client) Providers(ctx context.Context, filter ProviderFilter) ([]marketplace.ProviderListing, error) {
	var listings []marketplace.ProviderListing
	if err := c.Do(ctx, http.MethodGet, "/providers"+filter.query(), nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// CreateProviderProfileRequest carries the offering a provider publishes.
type CreateProviderProfileRequest struct {
	Services        []marketplace.ServiceCategory           `json:"services"`
	HourlyRate      map[marketplace.ServiceCategory]float64 `json:"hourly_rate"`
	ExperienceYears int                                     `json:"experience_years"`
	Description     string                                  `json:"description"`
	Availability    map[string][]string                     `json:"availability"`
}

// CreateProviderProfile publishes the authenticated provider's offering.
// Provider accounts only; the server rejects clients with 403.
func (c *Client) CreateProviderProfile(ctx context.Context, req CreateProviderProfileRequest) (*marketplace.ProviderProfile, error) {
	var profile marketplace.ProviderProfile
	if err := c.Do(ctx, http.MethodPost, "/provider/profile", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProviderProfile fetches the authenticated provider's own offering.
func (c *Client) ProviderProfile(ctx context.Context) (*marketplace.ProviderProfile, error) {
	var profile marketplace.ProviderProfile
	if err := c.Do(ctx, http.MethodGet, "/provider/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
