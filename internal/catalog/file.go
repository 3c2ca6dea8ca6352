package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alorle/nexum-portal/internal/channel"
	"github.com/alorle/nexum-portal/internal/sponsor"
)

type document struct {
	DefaultChannel string       `yaml:"default_channel,omitempty"`
	Channels       []channelDoc `yaml:"channels"`
	Sponsors       []sponsorDoc `yaml:"sponsors"`
	Ticker         []string     `yaml:"ticker"`
}

type channelDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	StreamURL   string `yaml:"stream_url"`
	Live        bool   `yaml:"live"`
	Premium     bool   `yaml:"premium,omitempty"`
}

type sponsorDoc struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Logo   string `yaml:"logo,omitempty"`
	Link   string `yaml:"link"`
	Accent string `yaml:"accent,omitempty"`
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return doc.build()
}

// Marshal encodes a catalog as YAML in the format accepted by Parse.
func Marshal(c *Catalog) ([]byte, error) {
	doc := document{
		DefaultChannel: c.DefaultChannelID(),
		Ticker:         c.Ticker(),
	}
	for _, ch := range c.Channels().All() {
		doc.Channels = append(doc.Channels, channelDoc{
			ID:          ch.ID(),
			Name:        ch.Name(),
			Description: ch.Description(),
			StreamURL:   ch.StreamURL(),
			Live:        ch.IsLive(),
			Premium:     ch.IsPremium(),
		})
	}
	for _, s := range c.Sponsors() {
		doc.Sponsors = append(doc.Sponsors, sponsorDoc{
			ID:     s.ID(),
			Name:   s.Name(),
			Logo:   s.Logo(),
			Link:   s.Link(),
			Accent: s.Accent(),
		})
	}
	return yaml.Marshal(doc)
}

func (d document) build() (*Catalog, error) {
	channels := make([]channel.Channel, 0, len(d.Channels))
	for _, cd := range d.Channels {
		ch, err := channel.NewChannel(cd.ID, cd.Name, cd.Description, cd.StreamURL, cd.Live, cd.Premium)
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", cd.ID, err)
		}
		channels = append(channels, ch)
	}

	registry, err := channel.NewRegistry(channels)
	if err != nil {
		return nil, err
	}

	sponsors := make([]sponsor.Sponsor, 0, len(d.Sponsors))
	for _, sd := range d.Sponsors {
		s, err := sponsor.NewSponsor(sd.ID, sd.Name, sd.Logo, sd.Link, sd.Accent)
		if err != nil {
			return nil, fmt.Errorf("sponsor %q: %w", sd.ID, err)
		}
		sponsors = append(sponsors, s)
	}

	return New(registry, sponsors, d.Ticker, d.DefaultChannel)
}
