// Package dashboard selects the client's top-level screen and loads the
// data behind the authenticated one.
//
// Resolve is a pure mapping from session state to screen. The Loader handles
// the authenticated screen's two fetches: bookings always, the provider
// directory only for client accounts. Fetch failures are logged and degrade
// to empty lists; the dashboard never shows an error banner for them.
package dashboard
