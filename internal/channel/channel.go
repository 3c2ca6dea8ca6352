package channel

import (
	"errors"
	"net/url"
	"strings"
)

// Domain errors
var (
	ErrEmptyID            = errors.New("channel id cannot be empty")
	ErrEmptyName          = errors.New("channel name cannot be empty")
	ErrInvalidStreamURL   = errors.New("channel stream url must be an absolute http(s) url")
	ErrChannelNotFound    = errors.New("channel not found")
	ErrDuplicateChannelID = errors.New("duplicate channel id")
	ErrNoChannels         = errors.New("channel registry cannot be empty")
)

// Channel represents a live TV channel of the portal.
// It is an immutable value object built from static configuration.
type Channel struct {
	id          string
	name        string
	description string
	streamURL   string
	live        bool
	premium     bool
}

// NewChannel creates a new Channel with the given attributes.
// It trims whitespace and validates that id and name are not empty and that
// streamURL is an absolute http or https URL (an HLS manifest endpoint).
func NewChannel(id, name, description, streamURL string, live, premium bool) (Channel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Channel{}, ErrEmptyID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Channel{}, ErrEmptyName
	}

	streamURL = strings.TrimSpace(streamURL)
	u, err := url.Parse(streamURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Channel{}, ErrInvalidStreamURL
	}

	return Channel{
		id:          id,
		name:        name,
		description: strings.TrimSpace(description),
		streamURL:   streamURL,
		live:        live,
		premium:     premium,
	}, nil
}

// ID returns the channel's unique identifier.
func (c Channel) ID() string {
	return c.id
}

// Name returns the channel's display name.
func (c Channel) Name() string {
	return c.name
}

// Description returns the channel's short description.
func (c Channel) Description() string {
	return c.description
}

// StreamURL returns the HLS manifest URL of the channel.
func (c Channel) StreamURL() string {
	return c.streamURL
}

// IsLive reports whether the channel is broadcasting live.
func (c Channel) IsLive() bool {
	return c.live
}

// IsPremium reports whether the channel is a premium channel.
func (c Channel) IsPremium() bool {
	return c.premium
}
