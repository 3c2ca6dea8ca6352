package driven

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/alorle/nexum-portal/internal/news"
)

const (
	defaultFeedTimeout = 30 * time.Second
	defaultFeedURL     = "https://yesmagazine.it/feed"

	// Some origins serve a challenge page to unknown clients.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// RSSFeedFetcher reads a syndication feed over HTTP.
// It implements the driven.FeedSource port.
type RSSFeedFetcher struct {
	url    string
	client *http.Client
}

// NewRSSFeedFetcher creates a new feed fetcher for the given URL.
// If url is empty, it uses the default news source.
// If client is nil, it creates a default HTTP client with a 30-second timeout.
func NewRSSFeedFetcher(url string, client *http.Client) *RSSFeedFetcher {
	if url == "" {
		url = defaultFeedURL
	}
	if client == nil {
		client = &http.Client{
			Timeout: defaultFeedTimeout,
		}
	}
	return &RSSFeedFetcher{
		url:    url,
		client: client,
	}
}

// FetchEntries downloads the feed, bypassing intermediary caches, and returns
// its entries in document order.
// Returns an error if the HTTP request fails, the status is not 2xx, or the
// document cannot be parsed.
func (f *RSSFeedFetcher) FetchEntries(ctx context.Context) ([]news.Entry, error) {
	req, err := f.newRequest(ctx, http.MethodGet)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected HTTP status: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	entries := make([]news.Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, news.Entry{
			Title:        item.Title,
			Link:         item.Link,
			Categories:   item.Categories,
			Description:  item.Description,
			Content:      item.Content,
			Published:    item.PublishedParsed,
			PublishedRaw: item.Published,
		})
	}

	return entries, nil
}

// Ping checks that the feed origin answers. Any status below 500 counts as
// reachable.
func (f *RSSFeedFetcher) Ping(ctx context.Context) error {
	req, err := f.newRequest(ctx, http.MethodHead)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("feed origin unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("feed origin unhealthy: %d %s", resp.StatusCode, resp.Status)
	}
	return nil
}

func (f *RSSFeedFetcher) newRequest(ctx context.Context, method string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	return req, nil
}
