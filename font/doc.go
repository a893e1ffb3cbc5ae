// Package font maps (family, weight, style) requests to renderable font
// bytes. Resolution is layered: an on-disk Cache of previously fetched
// variants, a Catalog of known-but-not-yet-cached variants sourced from a
// remote directory listing, and a Fetcher for first fetch. Resolver ties the
// layers together behind a single lock so concurrent requests that miss on
// the same variant trigger at most one fetch.
package font
