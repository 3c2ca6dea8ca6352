package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alorle/nexum-portal/internal/catalog"
	"github.com/alorle/nexum-portal/internal/news"
	"github.com/alorle/nexum-portal/internal/playback"
	"github.com/alorle/nexum-portal/internal/port/driven"
	"github.com/alorle/nexum-portal/internal/probe"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func mustDefaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to build default catalog: %v", err)
	}
	return c
}

// mockFeedSource implements driven.FeedSource for testing.
type mockFeedSource struct {
	fetchEntriesFunc func(ctx context.Context) ([]news.Entry, error)
	pingFunc         func(ctx context.Context) error
}

func (m *mockFeedSource) FetchEntries(ctx context.Context) ([]news.Entry, error) {
	if m.fetchEntriesFunc != nil {
		return m.fetchEntriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockFeedSource) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// mockProbeRepository implements driven.ProbeRepository for testing.
type mockProbeRepository struct {
	saveFunc               func(ctx context.Context, r probe.Result) error
	findByChannelSinceFunc func(ctx context.Context, channelID string, since time.Time) ([]probe.Result, error)
	deleteBeforeFunc       func(ctx context.Context, before time.Time) error
}

func (m *mockProbeRepository) Save(ctx context.Context, r probe.Result) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, r)
	}
	return nil
}

func (m *mockProbeRepository) FindByChannelSince(ctx context.Context, channelID string, since time.Time) ([]probe.Result, error) {
	if m.findByChannelSinceFunc != nil {
		return m.findByChannelSinceFunc(ctx, channelID, since)
	}
	return []probe.Result{}, nil
}

func (m *mockProbeRepository) DeleteBefore(ctx context.Context, before time.Time) error {
	if m.deleteBeforeFunc != nil {
		return m.deleteBeforeFunc(ctx, before)
	}
	return nil
}

// callLog records calls across mocks in order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.calls))
	copy(out, l.calls)
	return out
}

func indexOf(calls []string, want string) int {
	for i, c := range calls {
		if c == want {
			return i
		}
	}
	return -1
}

// mockEngine implements driven.MediaEngine for testing.
type mockEngine struct {
	n      int
	cfg    driven.EngineConfig
	notify playback.Notifier
	log    *callLog

	onAttach func(e *mockEngine)

	mu           sync.Mutex
	source       string
	surface      driven.VideoSurface
	startLoads   int
	recoveries   int
	destroyCount int
}

func (e *mockEngine) LoadSource(url string) {
	e.mu.Lock()
	e.source = url
	e.mu.Unlock()
	e.log.add("load:%d", e.n)
}

func (e *mockEngine) AttachMedia(surface driven.VideoSurface) {
	e.mu.Lock()
	e.surface = surface
	e.mu.Unlock()
	e.log.add("attach:%d", e.n)
	if e.onAttach != nil {
		e.onAttach(e)
	}
}

func (e *mockEngine) StartLoad() {
	e.mu.Lock()
	e.startLoads++
	e.mu.Unlock()
	e.log.add("startload:%d", e.n)
}

func (e *mockEngine) RecoverMediaError() {
	e.mu.Lock()
	e.recoveries++
	e.mu.Unlock()
	e.log.add("recover:%d", e.n)
}

func (e *mockEngine) Destroy() {
	e.mu.Lock()
	e.destroyCount++
	e.mu.Unlock()
	e.log.add("destroy:%d", e.n)
}

func (e *mockEngine) emit(ev playback.Event) {
	e.notify(ev)
}

func (e *mockEngine) counts() (startLoads, recoveries, destroys int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startLoads, e.recoveries, e.destroyCount
}

// mockEngineFactory implements driven.MediaEngineFactory for testing.
type mockEngineFactory struct {
	unsupported bool
	log         *callLog
	onAttach    func(e *mockEngine)

	mu      sync.Mutex
	engines []*mockEngine
}

func (f *mockEngineFactory) Supported() bool {
	return !f.unsupported
}

func (f *mockEngineFactory) NewEngine(cfg driven.EngineConfig, notify playback.Notifier) driven.MediaEngine {
	f.mu.Lock()
	e := &mockEngine{
		n:        len(f.engines) + 1,
		cfg:      cfg,
		notify:   notify,
		log:      f.log,
		onAttach: f.onAttach,
	}
	f.engines = append(f.engines, e)
	f.mu.Unlock()

	f.log.add("new:%d", e.n)
	return e
}

func (f *mockEngineFactory) engine(i int) *mockEngine {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.engines[i]
}

func (f *mockEngineFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.engines)
}

// mockSurface implements driven.VideoSurface for testing.
type mockSurface struct {
	native  bool
	playErr error

	mu        sync.Mutex
	source    string
	notify    playback.Notifier
	clears    int
	playCalls int
}

func (s *mockSurface) CanPlayType(mimeType string) bool {
	return s.native && mimeType == playback.NativeHLSMimeType
}

func (s *mockSurface) SetSource(url string, notify playback.Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = url
	s.notify = notify
}

func (s *mockSurface) ClearSource() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = ""
	s.clears++
}

func (s *mockSurface) Play(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playCalls++
	return s.playErr
}

func (s *mockSurface) emit(ev playback.Event) {
	s.mu.Lock()
	notify := s.notify
	s.mu.Unlock()
	notify(ev)
}

func (s *mockSurface) plays() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playCalls
}

// mockFullscreenMethod implements driven.FullscreenMethod for testing.
type mockFullscreenMethod struct {
	name      string
	enterFunc func(ctx context.Context) error
	exitFunc  func(ctx context.Context) error

	enters int
	exits  int
}

func (m *mockFullscreenMethod) Name() string { return m.name }

func (m *mockFullscreenMethod) Enter(ctx context.Context) error {
	m.enters++
	if m.enterFunc != nil {
		return m.enterFunc(ctx)
	}
	return nil
}

func (m *mockFullscreenMethod) Exit(ctx context.Context) error {
	m.exits++
	if m.exitFunc != nil {
		return m.exitFunc(ctx)
	}
	return nil
}
