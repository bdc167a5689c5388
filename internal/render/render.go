// Package render turns status API payloads into markdown documents.
//
// The output shape (heading markers, metadata lines, separators and blank
// lines) is stable; downstream archives diff against it.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"x-to-markdown/internal/domain"
)

// Markdown renders a payload as an article or as a flat tweet, depending on
// whether the post carries an article.
func Markdown(p *domain.Payload) (string, error) {
	if p == nil || p.Tweet == nil {
		return "", domain.ErrNoTweetData
	}
	if p.Tweet.IsArticle() {
		return Article(p)
	}
	return Tweet(p)
}

// Title returns the document heading text for a payload.
func Title(p *domain.Payload) string {
	if p == nil || p.Tweet == nil {
		return ""
	}
	if p.Tweet.IsArticle() {
		return p.Tweet.Article.Title
	}
	return "Tweet by " + p.Tweet.Author.Name
}

var numbers = message.NewPrinter(language.English)

// writeMeta writes the author, published, source and stats lines followed
// by the horizontal rule that opens the body.
func writeMeta(b *strings.Builder, tw *domain.Tweet, published string) {
	fmt.Fprintf(b, "**Author:** %s (@%s)\n", tw.Author.Name, tw.Author.ScreenName)
	fmt.Fprintf(b, "**Published:** %s\n", published)
	fmt.Fprintf(b, "**Source:** %s\n", tw.URL)
	if stats := formatStats(tw); stats != "" {
		fmt.Fprintf(b, "**Stats:** %s\n", stats)
	}
	b.WriteString("\n---\n\n")
}

// formatStats joins the non-zero engagement counters. It returns an empty
// string when every counter is zero.
func formatStats(tw *domain.Tweet) string {
	var parts []string
	for _, c := range []struct {
		n    int64
		unit string
	}{
		{tw.Likes, "likes"},
		{tw.Retweets, "retweets"},
		{tw.Views, "views"},
	} {
		if c.n == 0 {
			continue
		}
		parts = append(parts, numbers.Sprintf("%d %s", c.n, c.unit))
	}
	return strings.Join(parts, " · ")
}
