package render

import (
	"regexp"
	"strings"

	"x-to-markdown/internal/domain"
)

const maxSlugLength = 80

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases text, collapses every run of characters outside
// [a-z0-9] into a single dash and trims dashes from both ends. The result is
// cut to 80 bytes.
func Slugify(text string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(text), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = s[:maxSlugLength]
	}
	return s
}

// Slug returns a file-name friendly identifier for a payload: the article
// title for articles, the author handle and post id for flat posts.
func Slug(p *domain.Payload) string {
	if p == nil || p.Tweet == nil {
		return ""
	}
	tw := p.Tweet
	if tw.IsArticle() {
		if s := Slugify(tw.Article.Title); s != "" {
			return s
		}
	}
	return Slugify(tw.Author.ScreenName + " " + tw.ID.String())
}
