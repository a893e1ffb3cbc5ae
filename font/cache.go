package font

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nyble/textual"
)

// variantKey identifies one cached or cataloged font variant.
type variantKey struct {
	family  string
	variant Variant
}

// Cache is an on-disk store of previously fetched font variants. Filenames
// follow the "Family-weight style.ttf" convention; since a family name may
// itself contain '-', the family/variant split is on the last '-'.
//
// Cache does no locking of its own. Resolver guards it with its lock;
// standalone use from multiple goroutines needs external synchronization.
type Cache struct {
	dir   string
	index map[variantKey]string
}

// OpenCache scans dir and builds the variant index. Files whose names do
// not parse back into a (family, weight, style) triple are logged and
// skipped; an unreadable directory is a startup error.
func OpenCache(dir string) (*Cache, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("font: reading cache directory: %w", err)
	}

	c := &Cache{
		dir:   dir,
		index: make(map[variantKey]string),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		family, variant, err := parseCacheName(stem)
		if err != nil {
			textual.Logger().Warn("skipping unrecognised cache file", "name", name, "err", err)
			continue
		}

		c.index[variantKey{family: family, variant: variant}] = filepath.Join(dir, name)
	}

	textual.Logger().Info("font cache populated", "dir", dir, "variants", len(c.index))

	return c, nil
}

// parseCacheName splits a filename stem into its family and variant. The
// variant part after the last '-' must be in "weight style" form.
func parseCacheName(stem string) (string, Variant, error) {
	i := strings.LastIndex(stem, "-")
	if i < 0 {
		return "", Variant{}, fmt.Errorf("no family-variant separator in %q", stem)
	}

	family := stem[:i]
	variant, err := ParseVariant(stem[i+1:])
	if err != nil {
		return "", Variant{}, err
	}

	return family, variant, nil
}

// Lookup returns the path of a cached variant. Family matching is exact and
// case-sensitive.
func (c *Cache) Lookup(family string, v Variant) (string, bool) {
	path, ok := c.index[variantKey{family: family, variant: v}]
	return path, ok
}

// Insert writes the font bytes under the deterministic cache filename and
// records the variant in the index. The file is written before the index is
// touched, so a failed write leaves no partial index entry behind.
func (c *Cache) Insert(family string, v Variant, data []byte) (string, error) {
	name := fmt.Sprintf("%s-%s.ttf", family, v)
	path := filepath.Join(c.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("font: writing %s: %w", path, err)
	}

	c.index[variantKey{family: family, variant: v}] = path
	textual.Logger().Debug("saved font", "path", path)

	return path, nil
}

// Len returns the number of cached variants.
func (c *Cache) Len() int {
	return len(c.index)
}
