package channel_test

import (
	"errors"
	"testing"

	"github.com/alorle/nexum-portal/internal/channel"
)

const testStreamURL = "https://example.com/live/playlist.m3u8"

func TestNewChannel(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		chName    string
		streamURL string
		wantID    string
		wantName  string
		wantError error
	}{
		{
			name:      "valid channel",
			id:        "nexum-channel",
			chName:    "Nexum Channel",
			streamURL: testStreamURL,
			wantID:    "nexum-channel",
			wantName:  "Nexum Channel",
		},
		{
			name:      "whitespace is trimmed",
			id:        "  xcapital ",
			chName:    "\tXCapital\n",
			streamURL: "  " + testStreamURL + "  ",
			wantID:    "xcapital",
			wantName:  "XCapital",
		},
		{
			name:      "empty id",
			id:        "   ",
			chName:    "XCapital",
			streamURL: testStreamURL,
			wantError: channel.ErrEmptyID,
		},
		{
			name:      "empty name",
			id:        "xcapital",
			chName:    "",
			streamURL: testStreamURL,
			wantError: channel.ErrEmptyName,
		},
		{
			name:      "relative stream url",
			id:        "xcapital",
			chName:    "XCapital",
			streamURL: "/live/playlist.m3u8",
			wantError: channel.ErrInvalidStreamURL,
		},
		{
			name:      "unsupported scheme",
			id:        "xcapital",
			chName:    "XCapital",
			streamURL: "rtmp://example.com/live",
			wantError: channel.ErrInvalidStreamURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := channel.NewChannel(tt.id, tt.chName, "desc", tt.streamURL, true, false)

			if !errors.Is(err, tt.wantError) {
				t.Fatalf("NewChannel() error = %v, want %v", err, tt.wantError)
			}
			if tt.wantError != nil {
				return
			}
			if ch.ID() != tt.wantID {
				t.Errorf("ID() = %q, want %q", ch.ID(), tt.wantID)
			}
			if ch.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", ch.Name(), tt.wantName)
			}
			if ch.StreamURL() != testStreamURL {
				t.Errorf("StreamURL() = %q, want %q", ch.StreamURL(), testStreamURL)
			}
			if !ch.IsLive() {
				t.Error("expected channel to be live")
			}
			if ch.IsPremium() {
				t.Error("expected channel not to be premium")
			}
		})
	}
}

func mustChannel(t *testing.T, id string, live bool) channel.Channel {
	t.Helper()
	ch, err := channel.NewChannel(id, id, "", testStreamURL, live, false)
	if err != nil {
		t.Fatalf("failed to create channel %q: %v", id, err)
	}
	return ch
}

func TestNewRegistry(t *testing.T) {
	t.Run("empty list is rejected", func(t *testing.T) {
		_, err := channel.NewRegistry(nil)
		if !errors.Is(err, channel.ErrNoChannels) {
			t.Errorf("expected ErrNoChannels, got %v", err)
		}
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		_, err := channel.NewRegistry([]channel.Channel{
			mustChannel(t, "a", true),
			mustChannel(t, "a", false),
		})
		if !errors.Is(err, channel.ErrDuplicateChannelID) {
			t.Errorf("expected ErrDuplicateChannelID, got %v", err)
		}
	})

	t.Run("lookup and order", func(t *testing.T) {
		reg, err := channel.NewRegistry([]channel.Channel{
			mustChannel(t, "a", false),
			mustChannel(t, "b", true),
			mustChannel(t, "c", true),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if reg.Len() != 3 {
			t.Errorf("Len() = %d, want 3", reg.Len())
		}
		if reg.First().ID() != "a" {
			t.Errorf("First() = %q, want a", reg.First().ID())
		}

		live, ok := reg.FirstLive()
		if !ok || live.ID() != "b" {
			t.Errorf("FirstLive() = %q, %v, want b, true", live.ID(), ok)
		}

		got, err := reg.Get("c")
		if err != nil || got.ID() != "c" {
			t.Errorf("Get(c) = %q, %v", got.ID(), err)
		}

		if _, err := reg.Get("missing"); !errors.Is(err, channel.ErrChannelNotFound) {
			t.Errorf("expected ErrChannelNotFound, got %v", err)
		}
	})

	t.Run("All returns a copy", func(t *testing.T) {
		reg, err := channel.NewRegistry([]channel.Channel{mustChannel(t, "a", true)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		all := reg.All()
		all[0] = mustChannel(t, "z", false)

		if reg.First().ID() != "a" {
			t.Error("mutating All() result changed the registry")
		}
	})

	t.Run("no live channel", func(t *testing.T) {
		reg, err := channel.NewRegistry([]channel.Channel{mustChannel(t, "a", false)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := reg.FirstLive(); ok {
			t.Error("expected no live channel")
		}
	})
}
