package font

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/nyble/textual"
)

// Resolver is the public font-lookup entry point. It composes the on-disk
// Cache, the remote-sourced Catalog, and a Fetcher for first fetch.
//
// Resolver is safe for concurrent use. Cache hits proceed under a read
// lock; a cache-miss fetch and persist is a write-mode critical section, so
// concurrent requests that race on the same miss trigger at most one fetch.
type Resolver struct {
	mu      sync.RWMutex
	cache   *Cache
	catalog *Catalog
	fetch   Fetcher
}

// ResolverOption configures a Resolver during creation.
type ResolverOption func(*Resolver)

// WithFetcher sets the fetcher used for cache misses.
// The default is an HTTPFetcher on http.DefaultClient.
func WithFetcher(f Fetcher) ResolverOption {
	return func(r *Resolver) {
		r.fetch = f
	}
}

// NewResolver creates a resolver over the given cache and catalog.
func NewResolver(cache *Cache, catalog *Catalog, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache:   cache,
		catalog: catalog,
		fetch:   &HTTPFetcher{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the font bytes for a (family, variant) request. A cache
// hit never touches the network. On a miss the variant is looked up in the
// catalog; if absent, a NotFoundError is returned without any network I/O.
// Otherwise the bytes are fetched, persisted to the cache, and returned. A
// failed persist is logged and the fetched bytes are still returned;
// serving the request does not depend on caching succeeding.
//
// Family matching is exact string equality, case-sensitive.
func (r *Resolver) Resolve(ctx context.Context, family string, v Variant) ([]byte, error) {
	r.mu.RLock()
	path, ok := r.cache.Lookup(family, v)
	r.mu.RUnlock()
	if ok {
		return r.readCached(family, v, path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another request may have fetched this variant while we waited for
	// the write lock; re-check before going to the network.
	if path, ok := r.cache.Lookup(family, v); ok {
		return r.readCached(family, v, path)
	}

	url, ok := r.catalog.Lookup(family, v)
	if !ok {
		return nil, &NotFoundError{Family: family, Variant: v}
	}

	textual.Logger().Debug("missed cache", "family", family, "variant", v)

	data, err := r.fetch.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("font: fetching %s %s: %w", family, v, err)
	}

	// The file is written before the index is updated; a crash in between
	// only costs a redundant re-fetch after the next startup scan. A failed
	// persist degrades future requests to repeat the fetch, nothing more.
	if _, err := r.cache.Insert(family, v, data); err != nil {
		textual.Logger().Warn("failed to persist fetched font",
			"family", family, "variant", v, "err", err)
	}

	return data, nil
}

// readCached reads a cache-hit file from disk.
func (r *Resolver) readCached(family string, v Variant, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: reading cached %s: %w", path, err)
	}

	textual.Logger().Debug("hit cache", "family", family, "variant", v)

	return data, nil
}

// Cached returns the number of variants currently in the on-disk cache.
func (r *Resolver) Cached() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cache.Len()
}
