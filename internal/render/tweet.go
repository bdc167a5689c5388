package render

import (
	"fmt"
	"strings"

	"x-to-markdown/internal/domain"
)

// Tweet renders a flat post: heading, metadata, the text body and any
// attached photos or video thumbnails.
func Tweet(p *domain.Payload) (string, error) {
	if p == nil || p.Tweet == nil {
		return "", domain.ErrNoTweetData
	}
	tw := p.Tweet

	var b strings.Builder
	fmt.Fprintf(&b, "# Tweet by %s\n\n", tw.Author.Name)
	writeMeta(&b, tw, tw.CreatedAt)

	b.WriteString(tw.Body())
	b.WriteString("\n")

	if tw.Media != nil && len(tw.Media.All) > 0 {
		b.WriteString("\n")
		for _, m := range tw.Media.All {
			b.WriteString(renderMediaItem(m))
		}
	}

	return b.String(), nil
}

func renderMediaItem(m domain.MediaItem) string {
	switch m.Type {
	case domain.MediaPhoto:
		if m.URL == "" {
			return ""
		}
		return "![image](" + m.URL + ")\n\n"
	case domain.MediaVideo:
		if m.ThumbnailURL == "" {
			return ""
		}
		return "[Video thumbnail](" + m.ThumbnailURL + ")\n\n"
	default:
		return ""
	}
}
