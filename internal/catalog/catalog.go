// Package catalog defines the remote music-catalog collaborator: the
// read-only channel/track data this filesystem projects. The concrete
// client (SupabaseCatalog) is one implementation; the projection and
// download pipeline depend only on the Catalog interface.
package catalog

import (
	"context"

	"github.com/radio4000/r4fs/internal/option"
)

// Channel is a curated track collection identified by a URL-safe slug.
type Channel struct {
	Slug        string
	Name        option.Optional[string]
	Description option.Optional[string]
	// Image is either a full URL or a storage-relative key; §4.3
	// decides which based on the "http" prefix.
	Image      option.Optional[string]
	WebsiteURL option.Optional[string]
	// CreatedAt/UpdatedAt are raw ISO-8601 strings, possibly empty or
	// malformed; callers parse them with internal/datetime.TryParse.
	CreatedAt string
	UpdatedAt string
}

// Track belongs to exactly one channel.
type Track struct {
	ID          option.Optional[string]
	Title       option.Optional[string]
	URL         string
	Description option.Optional[string]
	DiscogsURL  option.Optional[string]
	CreatedAt   string
	UpdatedAt   string
	// Tags is the explicit tag list, if the catalog record carries one.
	Tags []string
}

// Catalog is the async read-only collaborator named in spec §1 as
// external; every method may block on network I/O and should honor
// ctx cancellation.
type Catalog interface {
	// Channels returns every channel, in catalog delivery order.
	Channels(ctx context.Context) ([]Channel, error)
	// Channel returns a single channel by slug.
	Channel(ctx context.Context, slug string) (Channel, error)
	// Tracks returns a channel's tracks, newest-first (the ordering
	// invariant in spec §3); callers reverse as needed.
	Tracks(ctx context.Context, channelSlug string) ([]Track, error)
	// StorageBaseURL is the configured catalog storage URL used by
	// §4.3's image.url derivation, trailing slash stripped.
	StorageBaseURL() string
}
