package driven

import (
	"github.com/alorle/nexum-portal/internal/playback"
)

// EngineConfig tunes a software adaptive-streaming engine.
type EngineConfig struct {
	// EnableWorker moves manifest and segment demuxing off the caller's thread.
	EnableWorker bool
	// LowLatencyMode keeps the buffer close to the live edge.
	LowLatencyMode bool
}

// MediaEngineFactory detects software HLS support and creates engines.
type MediaEngineFactory interface {
	// Supported reports whether the platform can run a software engine.
	Supported() bool

	// NewEngine creates an engine that reports its events through notify.
	NewEngine(cfg EngineConfig, notify playback.Notifier) MediaEngine
}

// MediaEngine is a software adaptive-streaming engine bound to one surface.
// Engines emit playback.ManifestParsed and playback.EngineError events.
type MediaEngine interface {
	// LoadSource sets the manifest URL to play.
	LoadSource(url string)

	// AttachMedia binds the engine to a surface and starts loading.
	AttachMedia(surface VideoSurface)

	// StartLoad reloads the current manifest after a network failure.
	StartLoad()

	// RecoverMediaError resets the decoding pipeline after a media failure.
	RecoverMediaError()

	// Destroy releases timers, workers and buffers. The engine is unusable afterwards.
	Destroy()
}
