package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alorle/nexum-portal/internal/channel"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if got := c.Channels().Len(); got != 6 {
		t.Errorf("expected 6 channels, got %d", got)
	}
	if got := len(c.Sponsors()); got != 4 {
		t.Errorf("expected 4 sponsors, got %d", got)
	}
	if got := len(c.Ticker()); got != 6 {
		t.Errorf("expected 6 ticker lines, got %d", got)
	}
	if c.DefaultChannelID() != "nexum-channel" {
		t.Errorf("DefaultChannelID() = %q, want nexum-channel", c.DefaultChannelID())
	}

	ch, err := c.Channels().Get("italian-horse")
	if err != nil {
		t.Fatalf("Get(italian-horse): %v", err)
	}
	if ch.Name() != "Italian Horse TV" || ch.IsPremium() {
		t.Errorf("unexpected channel %q premium=%v", ch.Name(), ch.IsPremium())
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	original, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := original.Channels().All()
	got := parsed.Channels().All()
	if len(got) != len(want) {
		t.Fatalf("expected %d channels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("channel %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
	if parsed.Sponsors()[2] != original.Sponsors()[2] {
		t.Errorf("sponsor mismatch: %+v vs %+v", parsed.Sponsors()[2], original.Sponsors()[2])
	}
	if parsed.Ticker()[0] != original.Ticker()[0] {
		t.Errorf("ticker mismatch: %q vs %q", parsed.Ticker()[0], original.Ticker()[0])
	}
}

func TestParse(t *testing.T) {
	t.Run("empty default selects first channel", func(t *testing.T) {
		c, err := Parse([]byte(`
channels:
  - id: one
    name: One
    stream_url: https://example.com/one.m3u8
    live: false
sponsors:
  - id: s
    name: S
    link: https://example.com
ticker: ["hello"]
`))
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if c.DefaultChannelID() != "one" {
			t.Errorf("DefaultChannelID() = %q, want one", c.DefaultChannelID())
		}
	})

	t.Run("unknown default channel", func(t *testing.T) {
		_, err := Parse([]byte(`
default_channel: nope
channels:
  - {id: one, name: One, stream_url: "https://example.com/one.m3u8", live: true}
sponsors:
  - {id: s, name: S, link: "https://example.com"}
ticker: ["hello"]
`))
		if !errors.Is(err, ErrUnknownDefaultID) {
			t.Errorf("expected ErrUnknownDefaultID, got %v", err)
		}
	})

	t.Run("invalid channel is reported", func(t *testing.T) {
		_, err := Parse([]byte(`
channels:
  - {id: one, name: One, stream_url: "not a url", live: true}
sponsors:
  - {id: s, name: S, link: "https://example.com"}
ticker: ["hello"]
`))
		if !errors.Is(err, channel.ErrInvalidStreamURL) {
			t.Errorf("expected ErrInvalidStreamURL, got %v", err)
		}
	})

	t.Run("missing sponsors", func(t *testing.T) {
		_, err := Parse([]byte(`
channels:
  - {id: one, name: One, stream_url: "https://example.com/one.m3u8", live: true}
ticker: ["hello"]
`))
		if !errors.Is(err, ErrNoSponsors) {
			t.Errorf("expected ErrNoSponsors, got %v", err)
		}
	})

	t.Run("missing ticker", func(t *testing.T) {
		_, err := Parse([]byte(`
channels:
  - {id: one, name: One, stream_url: "https://example.com/one.m3u8", live: true}
sponsors:
  - {id: s, name: S, link: "https://example.com"}
`))
		if !errors.Is(err, ErrNoTicker) {
			t.Errorf("expected ErrNoTicker, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := Parse([]byte("channels: [")); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		c, err := Default()
		if err != nil {
			t.Fatalf("Default() error: %v", err)
		}
		data, err := Marshal(c)
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}

		loaded, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error: %v", err)
		}
		if loaded.Channels().Len() != c.Channels().Len() {
			t.Errorf("expected %d channels, got %d", c.Channels().Len(), loaded.Channels().Len())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
