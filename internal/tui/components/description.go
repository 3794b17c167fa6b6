package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width and style to avoid expensive re-creation
var rendererCache sync.Map // map[string]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width and glamour style
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	cacheKey := fmt.Sprintf("%s/%d", style, width)
	if cached, ok := rendererCache.Load(cacheKey); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(cacheKey, renderer)
	return renderer, nil
}

// DescriptionProps holds the markdown to render
type DescriptionProps struct {
	Description string
	Width       int
	Dark        bool
}

// RenderDescription renders markdown with glamour, falling back to the raw text
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) == "" {
		return SubtleStyle.Italic(true).Render("No description")
	}

	style := "light"
	if props.Dark {
		style = "dark"
	}

	renderer, err := getRenderer(props.Width, style)
	if err == nil {
		rendered, err := renderer.Render(props.Description)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return props.Description
}
