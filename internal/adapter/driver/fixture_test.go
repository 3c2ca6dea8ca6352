package driver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapter "github.com/alorle/nexum-portal/internal/adapter/driven"
	"github.com/alorle/nexum-portal/internal/application"
	"github.com/alorle/nexum-portal/internal/catalog"
	"github.com/alorle/nexum-portal/internal/news"
	"github.com/alorle/nexum-portal/internal/port/driven"
)

const vodPlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:4
#EXT-X-MEDIA-SEQUENCE:0
#EXTINF:4.0,
segment0.ts
#EXT-X-ENDLIST
`

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockFeedSource is a mock implementation of driven.FeedSource.
type mockFeedSource struct {
	fetchFunc func(ctx context.Context) ([]news.Entry, error)
	pingFunc  func(ctx context.Context) error
}

func (m *mockFeedSource) FetchEntries(ctx context.Context) ([]news.Entry, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil, nil
}

func (m *mockFeedSource) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// fixture wires real services over an in-process HLS origin.
type fixture struct {
	catalog  *catalog.Catalog
	channels *application.ChannelService
	probes   *application.ProbeService
	portal   *application.PortalService
	surface  *adapter.HeadlessSurface
	feed     *mockFeedSource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/good/playlist.m3u8" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
		_, _ = io.WriteString(w, vodPlaylist)
	}))
	t.Cleanup(origin.Close)

	doc := `
default_channel: good
channels:
  - id: good
    name: Good Channel
    stream_url: ` + origin.URL + `/good/playlist.m3u8
    live: true
  - id: broken
    name: Broken Channel
    stream_url: ` + origin.URL + `/broken/playlist.m3u8
    live: true
sponsors:
  - id: "1"
    name: First
    link: https://first.example.com
  - id: "2"
    name: Second
    link: https://second.example.com
  - id: "3"
    name: Third
    link: https://third.example.com
ticker:
  - first line
  - second line
`
	c, err := catalog.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("failed to parse catalog: %v", err)
	}

	logger := newTestLogger()
	feed := &mockFeedSource{}

	engines := adapter.NewHLSEngineFactory(origin.Client(), logger)
	probes := application.NewProbeService(
		c,
		adapter.NewProbeMemoryRepository(),
		engines,
		func() driven.VideoSurface { return adapter.NewHeadlessSurface(false) },
		logger,
		time.Second,
		24*time.Hour,
	)

	surface := adapter.NewHeadlessSurface(true)
	fullscreen := application.NewFullscreen(logger, surface.FullscreenMethod())
	surface.OnFullscreenChange(fullscreen.OnChange)

	portal := application.NewPortalService(
		c,
		application.NewNewsService(feed, time.UTC, logger),
		application.NewPlayer(nil, logger),
		surface,
		fullscreen,
		application.DefaultPortalIntervals(),
		logger,
	)

	return &fixture{
		catalog:  c,
		channels: application.NewChannelService(c),
		probes:   probes,
		portal:   portal,
		surface:  surface,
		feed:     feed,
	}
}
