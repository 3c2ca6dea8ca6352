package probe

import (
	"strings"
	"time"

	"github.com/alorle/nexum-portal/internal/playback"
)

// Result represents a single playback probe of a channel's live stream.
// It is an immutable value object.
type Result struct {
	channelID      string
	sessionID      string
	timestamp      time.Time
	reachable      bool
	startupLatency time.Duration
	state          playback.State
	message        string
}

// NewResult creates a new probe result with validation.
// A probe is reachable only when playback reached the playing state.
func NewResult(
	channelID string,
	sessionID string,
	timestamp time.Time,
	startupLatency time.Duration,
	status playback.Status,
) (Result, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return Result{}, ErrEmptyChannelID
	}
	if timestamp.IsZero() {
		return Result{}, ErrInvalidTimestamp
	}
	return Result{
		channelID:      channelID,
		sessionID:      sessionID,
		timestamp:      timestamp,
		reachable:      status.State == playback.StatePlaying,
		startupLatency: startupLatency,
		state:          status.State,
		message:        status.Message,
	}, nil
}

func (r Result) ChannelID() string             { return r.channelID }
func (r Result) SessionID() string             { return r.sessionID }
func (r Result) Timestamp() time.Time          { return r.timestamp }
func (r Result) Reachable() bool               { return r.reachable }
func (r Result) StartupLatency() time.Duration { return r.startupLatency }
func (r Result) State() playback.State         { return r.state }
func (r Result) Message() string               { return r.message }
