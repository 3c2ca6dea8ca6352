package application

import (
	"context"

	"github.com/alorle/nexum-portal/internal/catalog"
	"github.com/alorle/nexum-portal/internal/channel"
	"github.com/alorle/nexum-portal/internal/sponsor"
)

// ChannelService provides read access to the configured line-up.
// It depends only on domain packages.
type ChannelService struct {
	catalog *catalog.Catalog
}

// NewChannelService creates a new ChannelService over the given catalog.
func NewChannelService(c *catalog.Catalog) *ChannelService {
	return &ChannelService{catalog: c}
}

// GetChannel retrieves a channel by its id.
// Returns channel.ErrChannelNotFound if the channel does not exist.
func (s *ChannelService) GetChannel(ctx context.Context, id string) (channel.Channel, error) {
	if err := ctx.Err(); err != nil {
		return channel.Channel{}, err
	}
	return s.catalog.Channels().Get(id)
}

// ListChannels retrieves all channels in configuration order.
func (s *ChannelService) ListChannels(ctx context.Context) ([]channel.Channel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Channels().All(), nil
}

// ListSponsors retrieves all sponsors in display order.
func (s *ChannelService) ListSponsors(ctx context.Context) ([]sponsor.Sponsor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Sponsors(), nil
}
