package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/alorle/nexum-portal/internal/catalog"
	"github.com/alorle/nexum-portal/internal/channel"
	"github.com/alorle/nexum-portal/internal/news"
	"github.com/alorle/nexum-portal/internal/playback"
	"github.com/alorle/nexum-portal/internal/port/driven"
	"github.com/alorle/nexum-portal/internal/schedule"
	"github.com/alorle/nexum-portal/internal/sponsor"
)

var ErrNoLiveChannel = errors.New("no live channel configured")

// HeadlineSource supplies the news list shown by the portal.
type HeadlineSource interface {
	FetchHeadlines(ctx context.Context) []news.Item
}

// PortalIntervals holds the refresh periods of the portal's timers.
type PortalIntervals struct {
	NewsRefresh time.Duration
	Rotation    time.Duration
}

// DefaultPortalIntervals returns the periods used by the public portal.
func DefaultPortalIntervals() PortalIntervals {
	return PortalIntervals{
		NewsRefresh: 5 * time.Minute,
		Rotation:    5 * time.Second,
	}
}

// PortalSnapshot is a consistent view of the portal at one instant.
type PortalSnapshot struct {
	Channel        channel.Channel
	SessionID      string
	Status         playback.Status
	TickerLine     string
	TickerIndex    int
	Sponsor        sponsor.Sponsor
	SponsorIndex   int
	News           []news.Item
	NewsUpdatedAt  time.Time
	Fullscreen     bool
	FullscreenIcon string
}

// PortalService is the portal's presentation state: the channel on air, the
// rotating ticker and sponsor carousel, and the latest headlines. It owns its
// timers and the Player bound to the monitor surface.
type PortalService struct {
	catalog    *catalog.Catalog
	headlines  HeadlineSource
	player     *Player
	surface    driven.VideoSurface
	fullscreen *Fullscreen
	logger     *slog.Logger

	newsTask    *schedule.Task
	tickerTask  *schedule.Task
	sponsorTask *schedule.Task

	mu            sync.Mutex
	channelID     string
	tickerIndex   int
	sponsorIndex  int
	news          []news.Item
	newsUpdatedAt time.Time
}

// NewPortalService creates a PortalService. Nothing runs until Start.
func NewPortalService(
	c *catalog.Catalog,
	headlines HeadlineSource,
	player *Player,
	surface driven.VideoSurface,
	fullscreen *Fullscreen,
	intervals PortalIntervals,
	logger *slog.Logger,
) *PortalService {
	s := &PortalService{
		catalog:    c,
		headlines:  headlines,
		player:     player,
		surface:    surface,
		fullscreen: fullscreen,
		logger:     logger,
		channelID:  c.DefaultChannelID(),
	}

	s.newsTask = schedule.New(intervals.NewsRefresh, s.RefreshNews, schedule.RunImmediately())
	s.tickerTask = schedule.New(intervals.Rotation, func(context.Context) { s.rotateTicker() })
	s.sponsorTask = schedule.New(intervals.Rotation, func(context.Context) { s.NextSponsor() })

	return s
}

// Start binds the default channel and starts the refresh and rotation timers.
func (s *PortalService) Start(ctx context.Context) error {
	if err := s.SelectChannel(s.catalog.DefaultChannelID()); err != nil {
		return err
	}

	s.newsTask.Start(ctx)
	s.tickerTask.Start(ctx)
	s.sponsorTask.Start(ctx)

	s.logger.Info("portal started", "channel", s.catalog.DefaultChannelID())
	return nil
}

// Stop cancels every timer and releases the player.
func (s *PortalService) Stop() {
	s.newsTask.Stop()
	s.tickerTask.Stop()
	s.sponsorTask.Stop()
	s.player.Unbind()

	s.logger.Info("portal stopped")
}

// SelectChannel puts the channel with the given id on air.
// Returns channel.ErrChannelNotFound if the channel does not exist.
func (s *PortalService) SelectChannel(id string) error {
	ch, err := s.catalog.Channels().Get(id)
	if err != nil {
		return err
	}

	sessionID := s.player.Bind(s.surface, ch.StreamURL())

	s.mu.Lock()
	s.channelID = ch.ID()
	s.mu.Unlock()

	s.logger.Info("channel selected", "channel", ch.ID(), "session", sessionID)
	return nil
}

// GoLive puts the first live channel on air.
func (s *PortalService) GoLive() error {
	ch, ok := s.catalog.Channels().FirstLive()
	if !ok {
		return ErrNoLiveChannel
	}
	return s.SelectChannel(ch.ID())
}

// RefreshNews replaces the headline list with a fresh fetch.
func (s *PortalService) RefreshNews(ctx context.Context) {
	items := s.headlines.FetchHeadlines(ctx)

	s.mu.Lock()
	s.news = items
	s.newsUpdatedAt = time.Now()
	s.mu.Unlock()
}

// NextSponsor advances the sponsor carousel, wrapping around.
func (s *PortalService) NextSponsor() int {
	return s.moveSponsor(func(i int) int { return i + 1 })
}

// PrevSponsor moves the sponsor carousel back, wrapping around.
func (s *PortalService) PrevSponsor() int {
	return s.moveSponsor(func(i int) int { return i - 1 })
}

// SelectSponsor jumps to sponsor i, taken modulo the sponsor count.
func (s *PortalService) SelectSponsor(i int) int {
	return s.moveSponsor(func(int) int { return i })
}

func (s *PortalService) moveSponsor(next func(int) int) int {
	n := len(s.catalog.Sponsors())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sponsorIndex = wrap(next(s.sponsorIndex), n)
	return s.sponsorIndex
}

func (s *PortalService) rotateTicker() {
	n := len(s.catalog.Ticker())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickerIndex = wrap(s.tickerIndex+1, n)
}

// ToggleFullscreen toggles fullscreen presentation of the monitor surface.
func (s *PortalService) ToggleFullscreen(ctx context.Context) bool {
	return s.fullscreen.Toggle(ctx)
}

// Snapshot returns the current portal state.
func (s *PortalService) Snapshot() PortalSnapshot {
	sponsors := s.catalog.Sponsors()
	ticker := s.catalog.Ticker()

	s.mu.Lock()
	channelID := s.channelID
	tickerIndex := s.tickerIndex
	sponsorIndex := s.sponsorIndex
	items := make([]news.Item, len(s.news))
	copy(items, s.news)
	updatedAt := s.newsUpdatedAt
	s.mu.Unlock()

	ch, _ := s.catalog.Channels().Get(channelID)

	return PortalSnapshot{
		Channel:        ch,
		SessionID:      s.player.SessionID(),
		Status:         s.player.Status(),
		TickerLine:     ticker[tickerIndex],
		TickerIndex:    tickerIndex,
		Sponsor:        sponsors[sponsorIndex],
		SponsorIndex:   sponsorIndex,
		News:           items,
		NewsUpdatedAt:  updatedAt,
		Fullscreen:     s.fullscreen.Active(),
		FullscreenIcon: s.fullscreen.Icon(),
	}
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
