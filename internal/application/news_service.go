package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/alorle/nexum-portal/internal/news"
	"github.com/alorle/nexum-portal/internal/port/driven"
	"github.com/alorle/nexum-portal/metrics"
)

// MaxHeadlines is the number of feed entries considered per fetch.
const MaxHeadlines = 6

// NewsService turns the upstream syndication feed into display-ready headlines.
type NewsService struct {
	source   driven.FeedSource
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewsOption configures a NewsService.
type NewsOption func(*NewsService)

// WithClock overrides the time source used for relative dates.
func WithClock(now func() time.Time) NewsOption {
	return func(s *NewsService) {
		s.now = now
	}
}

// NewNewsService creates a NewsService reading from source. Absolute dates are
// rendered in loc; a nil loc means UTC.
func NewNewsService(source driven.FeedSource, loc *time.Location, logger *slog.Logger, opts ...NewsOption) *NewsService {
	if loc == nil {
		loc = time.UTC
	}
	s := &NewsService{
		source:   source,
		location: loc,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchHeadlines returns at most MaxHeadlines items. It never fails: fetch or
// parse errors yield news.ErrorFallback and a feed with no usable entries
// yields news.EmptyFallback.
func (s *NewsService) FetchHeadlines(ctx context.Context) []news.Item {
	start := time.Now()

	entries, err := s.source.FetchEntries(ctx)
	if err != nil {
		s.logger.Error("failed to fetch news feed, serving fallback", "error", err)
		metrics.RecordFeedFetch(metrics.FeedOutcomeError, time.Since(start), 0)
		return news.ErrorFallback()
	}

	if len(entries) > MaxHeadlines {
		entries = entries[:MaxHeadlines]
	}

	now := s.now()
	items := make([]news.Item, 0, len(entries))
	for _, e := range entries {
		item, ok := news.Normalize(e, now, s.location)
		if !ok {
			s.logger.Debug("skipping feed entry without title or link", "title", e.Title, "link", e.Link)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		s.logger.Warn("news feed has no usable entries, serving fallback", "entries", len(entries))
		metrics.RecordFeedFetch(metrics.FeedOutcomeEmpty, time.Since(start), 0)
		return news.EmptyFallback()
	}

	s.logger.Info("fetched news feed", "articles", len(items))
	s.logger.Debug("first article", "title", items[0].Title(), "date", items[0].Date(), "image", items[0].Image())
	metrics.RecordFeedFetch(metrics.FeedOutcomeOK, time.Since(start), len(items))

	return items
}
