// Package news models the headlines shown in the portal's news widget and the
// rules that turn raw syndication entries into display-ready items.
package news

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTitle = errors.New("news item title cannot be empty")
	ErrEmptyURL   = errors.New("news item url cannot be empty")
)

// Item is a display-ready headline. The date is a pre-rendered phrase, not a
// timestamp. Image and category are optional and empty when absent.
type Item struct {
	title    string
	excerpt  string
	url      string
	date     string
	image    string
	category string
}

// NewItem creates an Item, trimming whitespace and validating that title and
// url are present.
func NewItem(title, excerpt, url, date, image, category string) (Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Item{}, ErrEmptyTitle
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return Item{}, ErrEmptyURL
	}
	return Item{
		title:    title,
		excerpt:  excerpt,
		url:      url,
		date:     date,
		image:    strings.TrimSpace(image),
		category: strings.TrimSpace(category),
	}, nil
}

func (i Item) Title() string    { return i.title }
func (i Item) Excerpt() string  { return i.excerpt }
func (i Item) URL() string      { return i.url }
func (i Item) Date() string     { return i.date }
func (i Item) Image() string    { return i.image }
func (i Item) Category() string { return i.category }

// Entry is a raw syndication entry as read from the upstream feed, before any
// normalization. Published is nil when the entry carries no parseable date.
type Entry struct {
	Title        string
	Link         string
	Categories   []string
	Description  string
	Content      string
	Published    *time.Time
	PublishedRaw string
}

// Normalize converts a raw entry into a display Item relative to now.
// It returns false when the entry lacks a title or a link.
func Normalize(e Entry, now time.Time, loc *time.Location) (Item, bool) {
	title := strings.TrimSpace(e.Title)
	link := strings.TrimSpace(e.Link)
	if title == "" || link == "" {
		return Item{}, false
	}

	var category string
	for _, c := range e.Categories {
		if c = strings.TrimSpace(c); c != "" {
			category = c
			break
		}
	}

	date := RecentLabel
	if e.Published != nil {
		date = RelativeDate(*e.Published, now, loc)
	}

	item, err := NewItem(
		title,
		Excerpt(e.Description),
		link,
		date,
		ExtractImage(e.Description, e.Content),
		category,
	)
	if err != nil {
		return Item{}, false
	}
	return item, true
}
