package probe

import (
	"errors"
	"testing"
	"time"

	"github.com/alorle/nexum-portal/internal/playback"
)

func TestNewResult(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		channelID      string
		timestamp      time.Time
		startupLatency time.Duration
		status         playback.Status
		wantReachable  bool
		wantError      error
	}{
		{
			name:           "playing stream is reachable",
			channelID:      "nexum-channel",
			timestamp:      now,
			startupLatency: 2 * time.Second,
			status:         playback.Status{State: playback.StatePlaying},
			wantReachable:  true,
		},
		{
			name:      "terminal error is unreachable",
			channelID: "nexum-channel",
			timestamp: now,
			status:    playback.Status{State: playback.StateError, Message: playback.MessageFatal},
		},
		{
			name:      "still loading at timeout is unreachable",
			channelID: "nexum-channel",
			timestamp: now,
			status:    playback.Status{State: playback.StateLoading, Message: playback.MessageNetworkRetry},
		},
		{
			name:      "empty channel id",
			channelID: "",
			timestamp: now,
			wantError: ErrEmptyChannelID,
		},
		{
			name:      "whitespace-only channel id",
			channelID: "   ",
			timestamp: now,
			wantError: ErrEmptyChannelID,
		},
		{
			name:      "zero timestamp",
			channelID: "nexum-channel",
			timestamp: time.Time{},
			wantError: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewResult(tt.channelID, "session-1", tt.timestamp, tt.startupLatency, tt.status)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("expected error %v, got %v", tt.wantError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.ChannelID() != tt.channelID {
				t.Errorf("ChannelID() = %q, want %q", result.ChannelID(), tt.channelID)
			}
			if result.SessionID() != "session-1" {
				t.Errorf("SessionID() = %q, want %q", result.SessionID(), "session-1")
			}
			if !result.Timestamp().Equal(tt.timestamp) {
				t.Errorf("Timestamp() = %v, want %v", result.Timestamp(), tt.timestamp)
			}
			if result.Reachable() != tt.wantReachable {
				t.Errorf("Reachable() = %v, want %v", result.Reachable(), tt.wantReachable)
			}
			if result.StartupLatency() != tt.startupLatency {
				t.Errorf("StartupLatency() = %v, want %v", result.StartupLatency(), tt.startupLatency)
			}
			if result.State() != tt.status.State {
				t.Errorf("State() = %q, want %q", result.State(), tt.status.State)
			}
			if result.Message() != tt.status.Message {
				t.Errorf("Message() = %q, want %q", result.Message(), tt.status.Message)
			}
		})
	}
}

func TestNewResult_TrimsWhitespace(t *testing.T) {
	result, err := NewResult("  xcapital  ", "", time.Now(), 0, playback.Status{State: playback.StatePlaying})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ChannelID() != "xcapital" {
		t.Errorf("ChannelID() = %q, want %q", result.ChannelID(), "xcapital")
	}
}
