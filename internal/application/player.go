package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/alorle/nexum-portal/internal/playback"
	"github.com/alorle/nexum-portal/internal/port/driven"
	"github.com/alorle/nexum-portal/metrics"
)

// Playback strategies, used as metric labels and log attributes.
const (
	StrategyEngine      = "engine"
	StrategyNative      = "native"
	StrategyUnsupported = "unsupported"
)

// Player binds a live stream URL to a video surface and drives the playback
// state machine from engine and surface events.
//
// A Player owns at most one session at a time. Binding a new URL destroys the
// previous engine before the next one is created, and events from a destroyed
// engine are dropped.
type Player struct {
	factory driven.MediaEngineFactory
	logger  *slog.Logger

	// bindMu serializes Bind and Unbind. It is never held while handling events,
	// so engines may block on event delivery while being destroyed.
	bindMu sync.Mutex

	mu          sync.Mutex
	status      playback.Status
	session     *session
	generation  uint64
	subscribers map[int]func(playback.Status)
	nextSubID   int
}

type session struct {
	id         string
	generation uint64
	url        string
	surface    driven.VideoSurface
	engine     driven.MediaEngine
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewPlayer creates an idle Player. factory may be nil on platforms without a
// software engine, in which case only native playback is attempted.
func NewPlayer(factory driven.MediaEngineFactory, logger *slog.Logger) *Player {
	return &Player{
		factory:     factory,
		logger:      logger,
		status:      playback.Status{State: playback.StateIdle},
		subscribers: make(map[int]func(playback.Status)),
	}
}

// Bind starts playing url on surface and returns the new session id.
// An empty url unbinds the current session and leaves the player idle.
func (p *Player) Bind(surface driven.VideoSurface, url string) string {
	p.bindMu.Lock()
	defer p.bindMu.Unlock()

	p.teardown()

	if url == "" || surface == nil {
		return ""
	}

	ctx, cancel := context.WithCancel(context.Background())

	p.mu.Lock()
	p.generation++
	sess := &session{
		id:         uuid.NewString(),
		generation: p.generation,
		url:        url,
		surface:    surface,
		ctx:        ctx,
		cancel:     cancel,
	}
	p.session = sess
	p.mu.Unlock()

	p.apply(sess, playback.Bound{})

	logger := p.logger.With("session", sess.id, "url", url)

	switch {
	case p.factory != nil && p.factory.Supported():
		engine := p.factory.NewEngine(driven.EngineConfig{
			EnableWorker:   true,
			LowLatencyMode: true,
		}, p.notifier(sess.generation))

		p.mu.Lock()
		sess.engine = engine
		p.mu.Unlock()

		metrics.RecordPlaybackSession(StrategyEngine)
		logger.Info("starting playback", "strategy", StrategyEngine)

		engine.LoadSource(url)
		engine.AttachMedia(surface)

	case surface.CanPlayType(playback.NativeHLSMimeType):
		metrics.RecordPlaybackSession(StrategyNative)
		logger.Info("starting playback", "strategy", StrategyNative)

		surface.SetSource(url, p.notifier(sess.generation))

	default:
		metrics.RecordPlaybackSession(StrategyUnsupported)
		logger.Warn("hls playback not supported on surface")

		p.apply(sess, playback.Unsupported{})
	}

	return sess.id
}

// Unbind stops the current session, if any, and returns the player to idle.
func (p *Player) Unbind() {
	p.bindMu.Lock()
	defer p.bindMu.Unlock()

	p.teardown()
}

// Status returns the current playback status.
func (p *Player) Status() playback.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// SessionID returns the id of the active session, or "" when idle.
func (p *Player) SessionID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return ""
	}
	return p.session.id
}

// Subscribe registers fn to be called after every status change.
// The returned function removes the subscription.
func (p *Player) Subscribe(fn func(playback.Status)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// teardown detaches the current session. The caller must hold bindMu.
func (p *Player) teardown() {
	p.mu.Lock()
	old := p.session
	p.session = nil
	p.mu.Unlock()

	if old == nil {
		return
	}

	old.cancel()
	if old.engine != nil {
		old.engine.Destroy()
		metrics.RecordEngineDestroyed()
	} else {
		old.surface.ClearSource()
	}

	p.logger.Debug("playback session closed", "session", old.id)

	p.setStatus(playback.Status{State: playback.StateIdle})
}

func (p *Player) notifier(generation uint64) playback.Notifier {
	return func(ev playback.Event) {
		p.mu.Lock()
		sess := p.session
		p.mu.Unlock()

		if sess == nil || sess.generation != generation {
			p.logger.Debug("dropping event from closed session", "event", eventName(ev))
			return
		}
		p.apply(sess, ev)
	}
}

// apply feeds ev to the state machine on behalf of sess and performs the
// resulting action. It is a no-op if sess is no longer current.
func (p *Player) apply(sess *session, ev playback.Event) {
	p.mu.Lock()
	if p.session != sess {
		p.mu.Unlock()
		return
	}
	prev := p.status
	next, action := playback.Transition(prev, ev)
	p.status = next
	subs := p.snapshotSubscribers()
	p.mu.Unlock()

	logger := p.logger.With("session", sess.id)

	switch e := ev.(type) {
	case playback.EngineError:
		if e.Fatal {
			logger.Error("fatal playback error", "kind", string(e.Kind), "details", e.Details)
		} else {
			logger.Debug("non-fatal playback error", "kind", string(e.Kind), "details", e.Details)
		}
	case playback.AutoplayBlocked:
		logger.Warn("autoplay rejected", "error", e.Err)
	}

	if next != prev {
		metrics.RecordPlaybackTransition(string(next.State))
		logger.Debug("playback status changed", "from", string(prev.State), "to", string(next.State))
		for _, fn := range subs {
			fn(next)
		}
	}

	p.perform(sess, action)
}

func (p *Player) perform(sess *session, action playback.Action) {
	switch action {
	case playback.ActionRequestPlay:
		if err := sess.surface.Play(sess.ctx); err != nil {
			p.apply(sess, playback.AutoplayBlocked{Err: err})
		}

	case playback.ActionReloadManifest:
		metrics.RecordPlaybackRecovery(action.String())
		if sess.engine != nil {
			sess.engine.StartLoad()
		}

	case playback.ActionRecoverMedia:
		metrics.RecordPlaybackRecovery(action.String())
		if sess.engine != nil {
			sess.engine.RecoverMediaError()
		}
	}
}

func (p *Player) setStatus(s playback.Status) {
	p.mu.Lock()
	prev := p.status
	p.status = s
	subs := p.snapshotSubscribers()
	p.mu.Unlock()

	if s == prev {
		return
	}
	metrics.RecordPlaybackTransition(string(s.State))
	for _, fn := range subs {
		fn(s)
	}
}

// snapshotSubscribers must be called with mu held.
func (p *Player) snapshotSubscribers() []func(playback.Status) {
	subs := make([]func(playback.Status), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func eventName(ev playback.Event) string {
	switch ev.(type) {
	case playback.Bound:
		return "bound"
	case playback.Unbound:
		return "unbound"
	case playback.Unsupported:
		return "unsupported"
	case playback.ManifestParsed:
		return "manifest_parsed"
	case playback.MetadataLoaded:
		return "metadata_loaded"
	case playback.AutoplayBlocked:
		return "autoplay_blocked"
	case playback.EngineError:
		return "engine_error"
	default:
		return "unknown"
	}
}
