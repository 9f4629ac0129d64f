package marketplace

import "errors"

var (
	// ErrEmptyCatalog indicates the embedded reference data is missing entries
	ErrEmptyCatalog = errors.New("marketplace.catalog_empty")
)
