package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/alorle/nexum-portal/internal/port/driven"
	"github.com/alorle/nexum-portal/metrics"
)

// Icons shown on the fullscreen toggle.
const (
	IconEnterFullscreen = "maximize"
	IconExitFullscreen  = "minimize"
)

// Fullscreen toggles fullscreen presentation using the first platform method
// that succeeds. Rejections are logged, never returned. The active flag only
// changes through OnChange, which the platform calls when presentation really
// changes.
type Fullscreen struct {
	methods []driven.FullscreenMethod
	logger  *slog.Logger

	mu     sync.Mutex
	active bool
}

// NewFullscreen creates a Fullscreen controller trying methods in order.
func NewFullscreen(logger *slog.Logger, methods ...driven.FullscreenMethod) *Fullscreen {
	return &Fullscreen{
		methods: methods,
		logger:  logger,
	}
}

// Toggle enters fullscreen when inactive and exits otherwise.
// It reports whether any method accepted the request.
func (f *Fullscreen) Toggle(ctx context.Context) bool {
	if f.Active() {
		return f.try(ctx, "exit", driven.FullscreenMethod.Exit)
	}
	return f.try(ctx, "enter", driven.FullscreenMethod.Enter)
}

func (f *Fullscreen) try(ctx context.Context, op string, call func(driven.FullscreenMethod, context.Context) error) bool {
	for _, m := range f.methods {
		err := call(m, ctx)
		if err == nil {
			f.logger.Debug("fullscreen request accepted", "op", op, "method", m.Name())
			return true
		}
		metrics.RecordFullscreenFailure()
		f.logger.Warn("fullscreen request rejected", "op", op, "method", m.Name(), "error", err)
	}
	if len(f.methods) == 0 {
		f.logger.Warn("no fullscreen method available", "op", op)
	}
	return false
}

// OnChange records a presentation change reported by the platform.
func (f *Fullscreen) OnChange(active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = active
}

// Active reports whether the surface is currently fullscreen.
func (f *Fullscreen) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Icon returns the icon for the toggle control.
func (f *Fullscreen) Icon() string {
	if f.Active() {
		return IconExitFullscreen
	}
	return IconEnterFullscreen
}
