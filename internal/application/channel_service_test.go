package application

import (
	"context"
	"errors"
	"testing"

	"github.com/alorle/nexum-portal/internal/channel"
)

func TestChannelService(t *testing.T) {
	svc := NewChannelService(mustDefaultCatalog(t))
	ctx := context.Background()

	t.Run("list preserves configuration order", func(t *testing.T) {
		channels, err := svc.ListChannels(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(channels) != 6 {
			t.Fatalf("expected 6 channels, got %d", len(channels))
		}
		if channels[0].ID() != "nexum-channel" {
			t.Errorf("first channel = %q, want nexum-channel", channels[0].ID())
		}
	})

	t.Run("get existing channel", func(t *testing.T) {
		ch, err := svc.GetChannel(ctx, "xcapital")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ch.Name() != "XCapital" {
			t.Errorf("Name() = %q, want XCapital", ch.Name())
		}
	})

	t.Run("get unknown channel", func(t *testing.T) {
		_, err := svc.GetChannel(ctx, "missing")
		if !errors.Is(err, channel.ErrChannelNotFound) {
			t.Errorf("expected ErrChannelNotFound, got %v", err)
		}
	})

	t.Run("list sponsors", func(t *testing.T) {
		sponsors, err := svc.ListSponsors(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sponsors) != 4 {
			t.Errorf("expected 4 sponsors, got %d", len(sponsors))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := svc.ListChannels(cctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
