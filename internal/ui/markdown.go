package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the wrap width of rendered markdown.
const markdownWidth = 80

// RenderMarkdown renders md for the terminal. Headless or colorless output
// gets the plain markdown back unchanged.
func (p *Console) RenderMarkdown(md string) (string, error) {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return md, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
