package font

import (
	"context"
	"fmt"
	"sort"

	"github.com/nyble/textual"
)

// CatalogSource lists the families a remote font directory offers.
// Implementations fetch the listing once, at startup.
type CatalogSource interface {
	List(ctx context.Context) ([]*Family, error)
}

// Catalog is an in-memory index of known-but-not-yet-cached variants and
// the URLs to fetch them from. It is built once from a CatalogSource and is
// read-only afterwards.
type Catalog struct {
	index    map[variantKey]string
	families []string
}

// NewCatalog builds a catalog from a source listing. A source failure is a
// startup error; the process has nothing to serve without a catalog.
func NewCatalog(ctx context.Context, src CatalogSource) (*Catalog, error) {
	families, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("font: listing catalog source: %w", err)
	}

	c := &Catalog{index: make(map[variantKey]string)}
	for _, fam := range families {
		for _, vl := range fam.variants {
			c.index[variantKey{family: fam.Name, variant: vl.variant}] = vl.locator
		}
		c.families = append(c.families, fam.Name)
	}
	sort.Strings(c.families)

	textual.Logger().Info("font catalog built", "families", len(c.families), "variants", len(c.index))

	return c, nil
}

// Lookup returns the fetch URL for an exact (family, variant) match.
// Family matching is exact and case-sensitive.
func (c *Catalog) Lookup(family string, v Variant) (string, bool) {
	url, ok := c.index[variantKey{family: family, variant: v}]
	return url, ok
}

// Families returns the sorted family names the catalog knows about.
func (c *Catalog) Families() []string {
	return c.families
}

// Len returns the number of variants in the catalog.
func (c *Catalog) Len() int {
	return len(c.index)
}
