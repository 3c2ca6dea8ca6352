package driven

import (
	"context"
	"errors"
	"sync"

	"github.com/alorle/nexum-portal/internal/playback"
	port "github.com/alorle/nexum-portal/internal/port/driven"
)

var ErrNoMedia = errors.New("no media attached to surface")

// HeadlessSurface is an offscreen video surface. It renders nothing; it only
// tracks what a real element would report so that the playback state machine
// can run server-side.
// It implements the driven.VideoSurface port.
type HeadlessSurface struct {
	native bool

	mu         sync.Mutex
	source     string
	notify     playback.Notifier
	playing    bool
	fullscreen bool
	onChange   func(active bool)
}

// NewHeadlessSurface creates a surface. When native is true the surface
// claims built-in HLS support and reports metadata as soon as a source is set.
func NewHeadlessSurface(native bool) *HeadlessSurface {
	return &HeadlessSurface{native: native}
}

// CanPlayType reports built-in support for the HLS manifest type only.
func (s *HeadlessSurface) CanPlayType(mimeType string) bool {
	return s.native && mimeType == playback.NativeHLSMimeType
}

// SetSource attaches url and reports metadata through notify.
func (s *HeadlessSurface) SetSource(url string, notify playback.Notifier) {
	s.mu.Lock()
	s.source = url
	s.notify = notify
	s.playing = false
	s.mu.Unlock()

	if notify != nil {
		notify(playback.MetadataLoaded{})
	}
}

// ClearSource detaches the native source and stops playback.
func (s *HeadlessSurface) ClearSource() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = ""
	s.notify = nil
	s.playing = false
}

// Play marks the surface as playing. Offscreen surfaces never block autoplay.
func (s *HeadlessSurface) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
	return nil
}

// Playing reports whether Play has been accepted since the last source change.
func (s *HeadlessSurface) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Source returns the native source, or "" when none is set.
func (s *HeadlessSurface) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// OnFullscreenChange registers the callback invoked when presentation changes.
func (s *HeadlessSurface) OnFullscreenChange(fn func(active bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// FullscreenMethod returns the surface's presentation method.
func (s *HeadlessSurface) FullscreenMethod() port.FullscreenMethod {
	return headlessFullscreen{surface: s}
}

func (s *HeadlessSurface) setFullscreen(active bool) error {
	s.mu.Lock()
	if active && !s.playing {
		s.mu.Unlock()
		return ErrNoMedia
	}
	changed := s.fullscreen != active
	s.fullscreen = active
	onChange := s.onChange
	s.mu.Unlock()

	if changed && onChange != nil {
		onChange(active)
	}
	return nil
}

type headlessFullscreen struct {
	surface *HeadlessSurface
}

func (h headlessFullscreen) Name() string { return "headless" }

func (h headlessFullscreen) Enter(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return h.surface.setFullscreen(true)
}

func (h headlessFullscreen) Exit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return h.surface.setFullscreen(false)
}
