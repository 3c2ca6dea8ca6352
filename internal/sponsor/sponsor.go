package sponsor

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID   = errors.New("sponsor id cannot be empty")
	ErrEmptyName = errors.New("sponsor name cannot be empty")
	ErrEmptyLink = errors.New("sponsor link cannot be empty")
)

// Sponsor is a partner record rendered in the rotating ad banner.
type Sponsor struct {
	id     string
	name   string
	logo   string
	link   string
	accent string
}

// NewSponsor creates a Sponsor, trimming whitespace and validating that id,
// name and link are present.
func NewSponsor(id, name, logo, link, accent string) (Sponsor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Sponsor{}, ErrEmptyID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Sponsor{}, ErrEmptyName
	}
	link = strings.TrimSpace(link)
	if link == "" {
		return Sponsor{}, ErrEmptyLink
	}
	return Sponsor{
		id:     id,
		name:   name,
		logo:   strings.TrimSpace(logo),
		link:   link,
		accent: strings.TrimSpace(accent),
	}, nil
}

func (s Sponsor) ID() string     { return s.id }
func (s Sponsor) Name() string   { return s.name }
func (s Sponsor) Logo() string   { return s.logo }
func (s Sponsor) Link() string   { return s.link }
func (s Sponsor) Accent() string { return s.accent }
