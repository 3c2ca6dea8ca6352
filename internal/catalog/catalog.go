// Package catalog holds the portal's static configuration: the channel line-up,
// the sponsor list and the header ticker lines. A Catalog is built once at
// startup and passed explicitly to the services that need it.
package catalog

import (
	"errors"
	"fmt"

	"github.com/alorle/nexum-portal/internal/channel"
	"github.com/alorle/nexum-portal/internal/sponsor"
)

var (
	ErrNoSponsors       = errors.New("catalog must contain at least one sponsor")
	ErrNoTicker         = errors.New("catalog must contain at least one ticker line")
	ErrUnknownDefaultID = errors.New("catalog default channel is not in the channel list")
)

// Catalog is the immutable portal configuration.
type Catalog struct {
	channels       *channel.Registry
	sponsors       []sponsor.Sponsor
	ticker         []string
	defaultChannel string
}

// New validates and assembles a Catalog. An empty defaultChannel selects the
// first channel of the registry.
func New(channels *channel.Registry, sponsors []sponsor.Sponsor, ticker []string, defaultChannel string) (*Catalog, error) {
	if channels == nil {
		return nil, channel.ErrNoChannels
	}
	if len(sponsors) == 0 {
		return nil, ErrNoSponsors
	}
	if len(ticker) == 0 {
		return nil, ErrNoTicker
	}
	if defaultChannel == "" {
		defaultChannel = channels.First().ID()
	}
	if _, err := channels.Get(defaultChannel); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefaultID, defaultChannel)
	}

	c := &Catalog{
		channels:       channels,
		sponsors:       make([]sponsor.Sponsor, len(sponsors)),
		ticker:         make([]string, len(ticker)),
		defaultChannel: defaultChannel,
	}
	copy(c.sponsors, sponsors)
	copy(c.ticker, ticker)
	return c, nil
}

// Channels returns the channel registry.
func (c *Catalog) Channels() *channel.Registry {
	return c.channels
}

// Sponsors returns a copy of the sponsor list in display order.
func (c *Catalog) Sponsors() []sponsor.Sponsor {
	out := make([]sponsor.Sponsor, len(c.sponsors))
	copy(out, c.sponsors)
	return out
}

// Ticker returns a copy of the ticker lines.
func (c *Catalog) Ticker() []string {
	out := make([]string, len(c.ticker))
	copy(out, c.ticker)
	return out
}

// DefaultChannelID returns the id of the channel selected on startup.
func (c *Catalog) DefaultChannelID() string {
	return c.defaultChannel
}
