package marketplace

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog holds the static reference data backing registration and search
// forms: the supported cities and the display labels for service categories.
type Catalog struct {
	Cities   []string                   `yaml:"cities"`
	Services map[ServiceCategory]string `yaml:"services"`
}

var (
	catalogOnce sync.Once
	catalog     Catalog
	catalogErr  error
)

// LoadCatalog parses the embedded reference data. The result is cached after
// the first call; the embedded document is trusted so errors indicate a
// broken build rather than bad runtime input.
func LoadCatalog() (Catalog, error) {
	catalogOnce.Do(func() {
		catalogErr = yaml.Unmarshal(catalogYAML, &catalog)
		if catalogErr == nil && (len(catalog.Cities) == 0 || len(catalog.Services) == 0) {
			catalogErr = ErrEmptyCatalog
		}
	})
	return catalog, catalogErr
}

// ServiceLabel returns the display label for a category, falling back to the
// raw category value for unknown entries.
func (c Catalog) ServiceLabel(category ServiceCategory) string {
	if label, ok := c.Services[category]; ok {
		return label
	}
	return string(category)
}

// HasCity reports whether the city is part of the supported list.
func (c Catalog) HasCity(city string) bool {
	for _, known := range c.Cities {
		if known == city {
			return true
		}
	}
	return false
}
