package news

import (
	"regexp"
	"strings"
)

const (
	// ExcerptLimit is the maximum number of runes kept from a description.
	ExcerptLimit = 120
	// Ellipsis is appended to truncated excerpts.
	Ellipsis = "..."
	// ExcerptPlaceholder replaces descriptions that are empty once stripped.
	ExcerptPlaceholder = "Leggi l'articolo completo..."
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	entityPattern = regexp.MustCompile(`&#?[a-zA-Z0-9]+;`)
	spacePattern  = regexp.MustCompile(`\s+`)
	angleReplacer = strings.NewReplacer("<", " ", ">", " ")
)

// Excerpt derives a short plain-text excerpt from an HTML description.
// Tags and character entities become spaces, whitespace is collapsed, and the
// result is cut to ExcerptLimit runes plus Ellipsis. The output never contains
// '<' or '>'.
func Excerpt(description string) string {
	text := tagPattern.ReplaceAllString(description, " ")
	text = entityPattern.ReplaceAllString(text, " ")
	text = angleReplacer.Replace(text)
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))

	if text == "" {
		return ExcerptPlaceholder
	}

	runes := []rune(text)
	if len(runes) > ExcerptLimit {
		return string(runes[:ExcerptLimit]) + Ellipsis
	}
	return text
}
