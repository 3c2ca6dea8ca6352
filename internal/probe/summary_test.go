package probe

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/alorle/nexum-portal/internal/playback"
)

func mustResult(t *testing.T, reachable bool, latency time.Duration) Result {
	t.Helper()
	status := playback.Status{State: playback.StateError, Message: playback.MessageFatal}
	if reachable {
		status = playback.Status{State: playback.StatePlaying}
	}
	r, err := NewResult("ch", "", time.Now(), latency, status)
	if err != nil {
		t.Fatalf("failed to create result: %v", err)
	}
	return r
}

func TestNewSummary(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		_, err := NewSummary("ch", nil)
		if !errors.Is(err, ErrNoProbeData) {
			t.Errorf("expected ErrNoProbeData, got %v", err)
		}
	})

	t.Run("mixed results", func(t *testing.T) {
		results := []Result{
			mustResult(t, true, 1*time.Second),
			mustResult(t, true, 3*time.Second),
			mustResult(t, false, 0),
			mustResult(t, false, 0),
		}

		s, err := NewSummary("ch", results)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if s.ChannelID() != "ch" {
			t.Errorf("ChannelID() = %q, want ch", s.ChannelID())
		}
		if s.TotalProbes() != 4 {
			t.Errorf("TotalProbes() = %d, want 4", s.TotalProbes())
		}
		if s.ReachableProbes() != 2 {
			t.Errorf("ReachableProbes() = %d, want 2", s.ReachableProbes())
		}
		if s.UptimeRatio() != 0.5 {
			t.Errorf("UptimeRatio() = %f, want 0.5", s.UptimeRatio())
		}
		if s.AvgStartupLatency() != 2000 {
			t.Errorf("AvgStartupLatency() = %f, want 2000", s.AvgStartupLatency())
		}
		if s.LatencyStdDev() != 1000 {
			t.Errorf("LatencyStdDev() = %f, want 1000", s.LatencyStdDev())
		}
	})

	t.Run("all unreachable", func(t *testing.T) {
		s, err := NewSummary("ch", []Result{mustResult(t, false, 0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.UptimeRatio() != 0 || s.AvgStartupLatency() != 0 {
			t.Errorf("expected zero uptime and latency, got %f / %f", s.UptimeRatio(), s.AvgStartupLatency())
		}
	})
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name    string
		results []bool
		latency time.Duration
		want    float64
	}{
		{name: "always unreachable", results: []bool{false, false}, want: 0},
		{name: "instant and stable", results: []bool{true, true}, latency: 0, want: 1.0},
		{name: "half uptime, half timeout latency", results: []bool{true, false}, latency: 5 * time.Second, want: 0.35 + 0.10 + 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []Result
			for _, ok := range tt.results {
				results = append(results, mustResult(t, ok, tt.latency))
			}
			s, err := NewSummary("ch", results)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := ComputeScore(s, 10*time.Second)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeScore() = %f, want %f", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("score out of range: %f", got)
			}
		})
	}
}
