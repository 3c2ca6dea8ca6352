package driven

import (
	"context"

	"github.com/alorle/nexum-portal/internal/news"
)

// FeedSource defines the interface for reading raw entries from a syndication feed.
// This is a driven port implemented by concrete adapters (e.g., an HTTP RSS client).
type FeedSource interface {
	// FetchEntries retrieves the feed and returns its entries in document order.
	// Returns an error on transport failure, non-success status or malformed documents.
	FetchEntries(ctx context.Context) ([]news.Entry, error)

	// Ping checks that the feed origin is reachable.
	Ping(ctx context.Context) error
}
