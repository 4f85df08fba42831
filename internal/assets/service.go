package assets

import (
	"fmt"
	"os"
	"strings"

	"github.com/coinfolio-dev/coinfolio/internal/model"
)

// Catalog provides in-memory lookup of display names by canonical symbol.
type Catalog struct {
	assets   []model.Asset
	bySymbol map[string]model.Asset
}

// NewCatalog creates a Catalog from a slice of assets.
func NewCatalog(assets []model.Asset) *Catalog {
	bySymbol := make(map[string]model.Asset, len(assets))
	for _, a := range assets {
		bySymbol[strings.ToUpper(a.Symbol)] = a
	}
	return &Catalog{assets: assets, bySymbol: bySymbol}
}

// Load reads an asset catalog CSV. A missing file yields the default catalog.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewCatalog(DefaultAssets()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening asset catalog: %w", err)
	}
	defer f.Close()

	list, err := ReadAssets(f)
	if err != nil {
		return nil, fmt.Errorf("reading asset catalog: %w", err)
	}
	return NewCatalog(list), nil
}

// All returns all cataloged assets.
func (c *Catalog) All() []model.Asset {
	return c.assets
}

// Name returns the display name for a canonical symbol. Unknown symbols
// fall back to the symbol itself.
func (c *Catalog) Name(symbol string) string {
	if a, ok := c.bySymbol[strings.ToUpper(symbol)]; ok {
		return a.Name
	}
	return strings.ToUpper(symbol)
}

// Exists reports whether a symbol is cataloged.
func (c *Catalog) Exists(symbol string) bool {
	_, ok := c.bySymbol[strings.ToUpper(symbol)]
	return ok
}

// Save writes the catalog to a CSV file.
func (c *Catalog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating asset catalog file: %w", err)
	}
	defer f.Close()

	if err := WriteAssets(f, c.assets); err != nil {
		return fmt.Errorf("writing asset catalog: %w", err)
	}
	return nil
}
