package driven

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/grafov/m3u8"

	"github.com/alorle/nexum-portal/internal/playback"
	port "github.com/alorle/nexum-portal/internal/port/driven"
)

const (
	defaultManifestTimeout = 10 * time.Second
	minRefreshInterval     = 500 * time.Millisecond
	defaultRetryDelay      = time.Second
)

// HLSEngineFactory creates server-side HLS engines that download and decode
// manifests with github.com/grafov/m3u8.
// It implements the driven.MediaEngineFactory port.
type HLSEngineFactory struct {
	client     *http.Client
	logger     *slog.Logger
	retryDelay time.Duration
}

// NewHLSEngineFactory creates a new engine factory.
// If client is nil, it creates a default HTTP client with a 10-second timeout.
func NewHLSEngineFactory(client *http.Client, logger *slog.Logger) *HLSEngineFactory {
	if client == nil {
		client = &http.Client{
			Timeout: defaultManifestTimeout,
		}
	}
	return &HLSEngineFactory{
		client:     client,
		logger:     logger,
		retryDelay: defaultRetryDelay,
	}
}

// Supported always reports true: manifest loading needs nothing but HTTP.
func (f *HLSEngineFactory) Supported() bool {
	return true
}

// NewEngine creates an engine reporting through notify.
func (f *HLSEngineFactory) NewEngine(cfg port.EngineConfig, notify playback.Notifier) port.MediaEngine {
	ctx, cancel := context.WithCancel(context.Background())
	return &HLSEngine{
		cfg:        cfg,
		client:     f.client,
		logger:     f.logger,
		retryDelay: f.retryDelay,
		notify:     notify,
		ctx:        ctx,
		cancel:     cancel,
		reload:     make(chan struct{}, 1),
	}
}

// HLSEngine loads an HLS manifest and, for live media playlists, keeps
// refreshing it at the target duration. With EnableWorker set, loading runs on
// a background goroutine; otherwise it runs on the caller's goroutine.
//
// Transport failures, non-2xx responses and undecodable manifests are reported
// as fatal network errors. Manifests without variants or segments are fatal
// media errors. Invalid URLs are fatal errors of kind other.
//
// A reload requested after a failed load waits retryDelay, so recovery
// triggered from a notify callback never busy-loops against a dead origin.
type HLSEngine struct {
	cfg        port.EngineConfig
	client     *http.Client
	logger     *slog.Logger
	retryDelay time.Duration
	notify     playback.Notifier

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	reload chan struct{}

	mu        sync.Mutex
	source    string
	surface   port.VideoSurface
	started   bool
	destroyed bool
	failed    bool
	retry     *time.Timer // pending inline reload
}

// LoadSource sets the manifest URL. Loading starts on AttachMedia.
func (e *HLSEngine) LoadSource(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.source = url
}

// AttachMedia binds the engine to surface and starts loading.
func (e *HLSEngine) AttachMedia(surface port.VideoSurface) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.surface = surface
	if !e.started && e.cfg.EnableWorker {
		e.wg.Add(1)
		go e.run()
	}
	e.started = true
	e.mu.Unlock()

	e.requestLoad()
}

// StartLoad reloads the manifest.
func (e *HLSEngine) StartLoad() {
	e.requestLoad()
}

// RecoverMediaError reloads the manifest from scratch.
func (e *HLSEngine) RecoverMediaError() {
	e.requestLoad()
}

// Destroy cancels in-flight requests and waits for the loader to exit.
// It is safe to call more than once.
func (e *HLSEngine) Destroy() {
	e.mu.Lock()
	e.destroyed = true
	if e.retry != nil && e.retry.Stop() {
		e.wg.Done()
	}
	e.retry = nil
	e.mu.Unlock()

	e.cancel()
	e.wg.Wait()
}

func (e *HLSEngine) requestLoad() {
	e.mu.Lock()
	ready := e.started && !e.destroyed
	e.mu.Unlock()
	if !ready {
		return
	}

	if !e.cfg.EnableWorker {
		e.loadInline()
		return
	}

	select {
	case e.reload <- struct{}{}:
	default:
	}
}

// loadInline loads on the caller's goroutine. After a failed load the next
// attempt is handed to a timer, so StartLoad from inside notify returns
// without re-entering load.
func (e *HLSEngine) loadInline() {
	e.mu.Lock()
	if e.destroyed || e.retry != nil {
		e.mu.Unlock()
		return
	}
	if e.failed {
		e.wg.Add(1)
		e.retry = time.AfterFunc(e.retryDelay, func() {
			defer e.wg.Done()
			e.mu.Lock()
			e.retry = nil
			e.failed = false
			e.mu.Unlock()
			e.loadInline()
		})
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	e.loadOnce()
}

// loadOnce runs a single load and reports a failure through notify.
func (e *HLSEngine) loadOnce() (liveMedia, bool) {
	live, ok, err := e.load(e.ctx)
	e.setFailed(err != nil)
	if err != nil {
		e.fail(err)
	}
	return live, ok
}

func (e *HLSEngine) setFailed(failed bool) {
	e.mu.Lock()
	e.failed = failed
	e.mu.Unlock()
}

func (e *HLSEngine) lastLoadFailed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.failed
}

func (e *HLSEngine) run() {
	defer e.wg.Done()

	var (
		refresh    <-chan time.Time
		timer      *time.Timer
		retry      <-chan time.Time
		retryTimer *time.Timer
		live       liveMedia
		liveOK     bool
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
		}
		refresh = nil
	}
	defer stopTimer()
	defer func() {
		if retryTimer != nil {
			retryTimer.Stop()
		}
	}()

	schedule := func() {
		stopTimer()
		if liveOK {
			timer = time.NewTimer(live.interval)
			refresh = timer.C
		}
	}

	for {
		select {
		case <-e.ctx.Done():
			return

		case <-e.reload:
			if e.lastLoadFailed() {
				if retry == nil {
					retryTimer = time.NewTimer(e.retryDelay)
					retry = retryTimer.C
				}
				continue
			}
			live, liveOK = e.loadOnce()
			schedule()

		case <-retry:
			retry, retryTimer = nil, nil
			live, liveOK = e.loadOnce()
			schedule()

		case <-refresh:
			if err := e.refreshLive(e.ctx, live.url); err != nil {
				liveOK = false
				e.setFailed(true)
				e.fail(err)
			}
			schedule()
		}
	}
}

// liveMedia describes a sliding-window media playlist that needs polling.
type liveMedia struct {
	url      string
	interval time.Duration
}

// load fetches the manifest and emits ManifestParsed on success. It returns
// the live playlist to poll, if any.
func (e *HLSEngine) load(ctx context.Context) (liveMedia, bool, error) {
	e.mu.Lock()
	source := e.source
	e.mu.Unlock()

	base, err := parseManifestURL(source)
	if err != nil {
		return liveMedia{}, false, err
	}

	pl, listType, err := e.fetch(ctx, base.String())
	if err != nil {
		return liveMedia{}, false, err
	}

	levels := 1
	mediaURL := base
	if listType == m3u8.MASTER {
		master := pl.(*m3u8.MasterPlaylist)
		if len(master.Variants) == 0 {
			return liveMedia{}, false, mediaError("master playlist has no variants")
		}
		levels = len(master.Variants)

		ref, err := url.Parse(master.Variants[0].URI)
		if err != nil {
			return liveMedia{}, false, mediaError(fmt.Sprintf("invalid variant uri %q", master.Variants[0].URI))
		}
		mediaURL = base.ResolveReference(ref)

		pl, listType, err = e.fetch(ctx, mediaURL.String())
		if err != nil {
			return liveMedia{}, false, err
		}
		if listType != m3u8.MEDIA {
			return liveMedia{}, false, mediaError("variant is not a media playlist")
		}
	}

	media := pl.(*m3u8.MediaPlaylist)
	if media.Count() == 0 {
		return liveMedia{}, false, mediaError("media playlist has no segments")
	}

	if ctx.Err() != nil {
		return liveMedia{}, false, nil
	}

	e.logger.Debug("manifest parsed", "url", source, "levels", levels, "segments", media.Count(), "live", !media.Closed)
	e.emit(playback.ManifestParsed{Levels: levels})

	if media.Closed {
		return liveMedia{}, false, nil
	}
	return liveMedia{url: mediaURL.String(), interval: e.refreshInterval(media.TargetDuration)}, true, nil
}

func (e *HLSEngine) refreshLive(ctx context.Context, mediaURL string) error {
	pl, listType, err := e.fetch(ctx, mediaURL)
	if err != nil {
		return err
	}
	if listType != m3u8.MEDIA {
		return mediaError("live playlist changed type")
	}
	if pl.(*m3u8.MediaPlaylist).Count() == 0 {
		return mediaError("live playlist has no segments")
	}
	return nil
}

func (e *HLSEngine) refreshInterval(targetDuration float64) time.Duration {
	d := time.Duration(targetDuration * float64(time.Second))
	if e.cfg.LowLatencyMode {
		d /= 2
	}
	if d < minRefreshInterval {
		d = minRefreshInterval
	}
	return d
}

func (e *HLSEngine) fetch(ctx context.Context, rawURL string) (m3u8.Playlist, m3u8.ListType, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, &loadError{kind: playback.ErrorOther, err: fmt.Errorf("creating HTTP request: %w", err)}
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, 0, &loadError{kind: playback.ErrorNetwork, err: fmt.Errorf("fetching manifest: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, 0, &loadError{kind: playback.ErrorNetwork, err: fmt.Errorf("unexpected HTTP status: %d %s", resp.StatusCode, resp.Status)}
	}

	pl, listType, err := m3u8.DecodeFrom(resp.Body, false)
	if err != nil {
		return nil, 0, &loadError{kind: playback.ErrorNetwork, err: fmt.Errorf("decoding manifest: %w", err)}
	}
	return pl, listType, nil
}

func (e *HLSEngine) fail(err error) {
	if e.ctx.Err() != nil {
		return
	}

	kind := playback.ErrorOther
	var le *loadError
	if errors.As(err, &le) {
		kind = le.kind
	}

	e.logger.Debug("manifest load failed", "kind", string(kind), "error", err)
	e.emit(playback.EngineError{Kind: kind, Fatal: true, Details: err.Error()})
}

func (e *HLSEngine) emit(ev playback.Event) {
	if e.ctx.Err() != nil {
		return
	}
	e.notify(ev)
}

// loadError tags a load failure with its playback error kind.
type loadError struct {
	kind playback.ErrorKind
	err  error
}

func (e *loadError) Error() string { return e.err.Error() }
func (e *loadError) Unwrap() error { return e.err }

func mediaError(msg string) error {
	return &loadError{kind: playback.ErrorMedia, err: errors.New(msg)}
}

func parseManifestURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &loadError{kind: playback.ErrorOther, err: fmt.Errorf("invalid manifest url: %w", err)}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &loadError{kind: playback.ErrorOther, err: fmt.Errorf("invalid manifest url %q", raw)}
	}
	return u, nil
}
