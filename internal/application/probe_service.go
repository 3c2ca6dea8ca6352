package application

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/alorle/nexum-portal/internal/catalog"
	"github.com/alorle/nexum-portal/internal/playback"
	"github.com/alorle/nexum-portal/internal/port/driven"
	"github.com/alorle/nexum-portal/internal/probe"
	"github.com/alorle/nexum-portal/metrics"
)

// ChannelQuality pairs a channel with its quality score and probe summary.
type ChannelQuality struct {
	ChannelID string
	Score     float64
	Summary   probe.Summary
}

// ProbeService checks that channel streams actually start playing by binding
// a throwaway Player to an offscreen surface.
type ProbeService struct {
	catalog      *catalog.Catalog
	probeRepo    driven.ProbeRepository
	engines      driven.MediaEngineFactory
	newSurface   func() driven.VideoSurface
	logger       *slog.Logger
	probeTimeout time.Duration
	window       time.Duration
}

// NewProbeService creates a new ProbeService. newSurface is called once per
// probe to obtain a fresh surface.
func NewProbeService(
	c *catalog.Catalog,
	probeRepo driven.ProbeRepository,
	engines driven.MediaEngineFactory,
	newSurface func() driven.VideoSurface,
	logger *slog.Logger,
	probeTimeout time.Duration,
	window time.Duration,
) *ProbeService {
	return &ProbeService{
		catalog:      c,
		probeRepo:    probeRepo,
		engines:      engines,
		newSurface:   newSurface,
		logger:       logger,
		probeTimeout: probeTimeout,
		window:       window,
	}
}

// ProbeChannel plays the channel's stream until it reaches the playing state,
// fails terminally or the probe timeout elapses.
// Returns channel.ErrChannelNotFound if the channel does not exist.
func (s *ProbeService) ProbeChannel(ctx context.Context, id string) (probe.Result, error) {
	ch, err := s.catalog.Channels().Get(id)
	if err != nil {
		return probe.Result{}, err
	}

	player := NewPlayer(s.engines, s.logger.With("probe", ch.ID()))

	settled := make(chan playback.Status, 1)
	unsubscribe := player.Subscribe(func(st playback.Status) {
		if st.State != playback.StatePlaying && !st.Terminal() {
			return
		}
		select {
		case settled <- st:
		default:
		}
	})
	defer unsubscribe()

	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	start := time.Now()
	sessionID := player.Bind(s.newSurface(), ch.StreamURL())

	var final playback.Status
	select {
	case final = <-settled:
	case <-probeCtx.Done():
		final = player.Status()
	}
	latency := time.Since(start)

	player.Unbind()

	result, err := probe.NewResult(ch.ID(), sessionID, time.Now(), latency, final)
	if err != nil {
		return probe.Result{}, fmt.Errorf("failed to create probe result: %w", err)
	}
	if err := s.probeRepo.Save(ctx, result); err != nil {
		return probe.Result{}, fmt.Errorf("failed to save probe result: %w", err)
	}

	metrics.RecordProbe(ch.ID(), result.Reachable())
	s.logger.Debug("probe completed",
		"channel", ch.ID(),
		"session", sessionID,
		"reachable", result.Reachable(),
		"state", string(result.State()),
		"startup_latency", latency,
	)

	return result, nil
}

// ProbeAllChannels probes every channel sequentially.
// It continues probing remaining channels even if individual probes fail.
func (s *ProbeService) ProbeAllChannels(ctx context.Context) error {
	channels := s.catalog.Channels().All()

	s.logger.Info("starting probe cycle", "channel_count", len(channels))

	var reachable, unreachable int
	for _, ch := range channels {
		if ctx.Err() != nil {
			s.logger.Info("probe cycle interrupted", "reachable", reachable, "unreachable", unreachable)
			return ctx.Err()
		}

		result, err := s.ProbeChannel(ctx, ch.ID())
		switch {
		case err != nil:
			unreachable++
			s.logger.Warn("probe failed", "channel", ch.ID(), "error", err)
		case result.Reachable():
			reachable++
		default:
			unreachable++
		}
	}

	s.logger.Info("probe cycle completed", "reachable", reachable, "unreachable", unreachable)

	if err := s.Cleanup(ctx); err != nil {
		s.logger.Error("probe cleanup failed", "error", err)
	}

	return nil
}

// GetQuality computes the quality of a channel within the rolling window.
// Returns probe.ErrNoProbeData if the channel has not been probed recently.
func (s *ProbeService) GetQuality(ctx context.Context, id string) (ChannelQuality, error) {
	if _, err := s.catalog.Channels().Get(id); err != nil {
		return ChannelQuality{}, err
	}

	results, err := s.GetProbeHistory(ctx, id)
	if err != nil {
		return ChannelQuality{}, err
	}

	summary, err := probe.NewSummary(id, results)
	if err != nil {
		return ChannelQuality{}, err
	}

	return ChannelQuality{
		ChannelID: id,
		Score:     probe.ComputeScore(summary, s.probeTimeout),
		Summary:   summary,
	}, nil
}

// GetQualityScores returns the quality of every probed channel, sorted by
// score descending (best first). Channels without probe data are skipped.
func (s *ProbeService) GetQualityScores(ctx context.Context) ([]ChannelQuality, error) {
	qualities := []ChannelQuality{}
	for _, ch := range s.catalog.Channels().All() {
		q, err := s.GetQuality(ctx, ch.ID())
		if err != nil {
			continue
		}
		qualities = append(qualities, q)
	}

	slices.SortStableFunc(qualities, func(a, b ChannelQuality) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return qualities, nil
}

// GetProbeHistory returns raw probe results for a channel within the rolling window.
func (s *ProbeService) GetProbeHistory(ctx context.Context, id string) ([]probe.Result, error) {
	since := time.Now().Add(-s.window)
	results, err := s.probeRepo.FindByChannelSince(ctx, id, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch probe results: %w", err)
	}
	return results, nil
}

// Cleanup removes probe data older than twice the rolling window.
func (s *ProbeService) Cleanup(ctx context.Context) error {
	cutoff := time.Now().Add(-s.window * 2)
	return s.probeRepo.DeleteBefore(ctx, cutoff)
}
