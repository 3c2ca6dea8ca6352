package news

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractImage returns the first acceptable <img src> found in description,
// falling back to content. Only absolute http and https URLs are accepted;
// anything else is skipped. Returns "" when nothing qualifies.
func ExtractImage(description, content string) string {
	for _, fragment := range []string{description, content} {
		if src := firstImage(fragment); src != "" {
			return src
		}
	}
	return ""
}

func firstImage(fragment string) string {
	if !strings.Contains(strings.ToLower(fragment), "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var found string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if isAllowedImageURL(src) {
			found = strings.TrimSpace(src)
			return false
		}
		return true
	})
	return found
}

func isAllowedImageURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
