package preview

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTML converts markdown to an HTML fragment with GitHub-flavoured
// extensions. Raw HTML in the source is escaped, not passed through.
type HTML struct {
	md goldmark.Markdown
}

// NewHTML creates an HTML converter.
func NewHTML() *HTML {
	return &HTML{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Render returns the HTML for md.
func (h *HTML) Render(md string) (string, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}
