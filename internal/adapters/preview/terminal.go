// Package preview turns rendered markdown into something a human can look
// at: ANSI-styled terminal text or an HTML fragment.
package preview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Terminal renders markdown for a terminal using glamour.
type Terminal struct {
	style string
	width int
}

// NewTerminal creates a Terminal renderer. An empty style falls back to
// "dark"; a non-positive width falls back to 80 columns.
func NewTerminal(style string, width int) *Terminal {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	return &Terminal{style: style, width: width}
}

// Write renders md and writes the styled text to w.
func (t *Terminal) Write(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(t.style),
		glamour.WithWordWrap(t.width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
