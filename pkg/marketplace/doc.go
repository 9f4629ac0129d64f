// Package marketplace defines the wire-level domain model of the Family Dom
// Maroc API: account profiles, provider listings, bookings, and the enums
// shared by every endpoint.
//
// The types mirror the server's JSON exactly; this package performs no I/O.
// It also ships the static reference catalog (supported cities and service
// category labels) embedded as YAML, so form-building code has a single
// typed source for it.
//
// # Usage
//
//	catalog, err := marketplace.LoadCatalog()
//	if err != nil {
//		// broken build, not bad input
//	}
//	for _, city := range catalog.Cities {
//		fmt.Println(city)
//	}
package marketplace
