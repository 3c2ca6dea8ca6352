package driven

import (
	"context"
	"time"

	"github.com/alorle/nexum-portal/internal/probe"
)

// ProbeRepository defines the interface for probe result storage.
// This is a driven port implemented by concrete adapters (e.g., an in-memory store).
type ProbeRepository interface {
	// Save stores a probe result.
	Save(ctx context.Context, r probe.Result) error

	// FindByChannelSince retrieves probe results for a channel since the
	// given time, ordered by timestamp descending (most recent first).
	FindByChannelSince(ctx context.Context, channelID string, since time.Time) ([]probe.Result, error)

	// DeleteBefore removes all probe results older than the given time.
	DeleteBefore(ctx context.Context, before time.Time) error
}
