package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Preview renders a Markdown document for display in a terminal
func Preview(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create preview renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return out, nil
}
