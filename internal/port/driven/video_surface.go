package driven

import (
	"context"

	"github.com/alorle/nexum-portal/internal/playback"
)

// VideoSurface is the element a stream is rendered on.
type VideoSurface interface {
	// CanPlayType reports whether the surface natively understands mimeType.
	CanPlayType(mimeType string) bool

	// SetSource plays url natively. The surface emits playback.MetadataLoaded
	// through notify once the stream is ready.
	SetSource(url string, notify playback.Notifier)

	// ClearSource detaches any native source.
	ClearSource()

	// Play requests playback. Platforms may reject unattended starts.
	Play(ctx context.Context) error
}
