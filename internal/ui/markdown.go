package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Glamour standard styles.
const (
	MarkdownDark  = "dark"
	MarkdownLight = "light"
)

// markdownCache keeps one glamour renderer per wrap width, all in one style.
var markdownCache = struct {
	sync.Mutex
	style     string
	renderers map[int]*glamour.TermRenderer
}{style: MarkdownDark, renderers: make(map[int]*glamour.TermRenderer)}

// DetectMarkdownStyle queries the terminal background. Call it before the
// program starts; once Bubble Tea owns the terminal the query would race
// with input.
func DetectMarkdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return MarkdownDark
	}
	return MarkdownLight
}

// SetMarkdownStyle selects the glamour style for later renders. Unknown
// names select the dark style.
func SetMarkdownStyle(style string) {
	if style != MarkdownLight {
		style = MarkdownDark
	}
	markdownCache.Lock()
	defer markdownCache.Unlock()
	if markdownCache.style == style {
		return
	}
	markdownCache.style = style
	clear(markdownCache.renderers)
}

// RenderMarkdown renders md for the terminal, wrapped at width. On any
// renderer error the source text is returned unchanged.
func RenderMarkdown(md string, width int) string {
	r := markdownRenderer(width)
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func markdownRenderer(width int) *glamour.TermRenderer {
	markdownCache.Lock()
	defer markdownCache.Unlock()
	if r, ok := markdownCache.renderers[width]; ok {
		return r
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownCache.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	markdownCache.renderers[width] = r
	return r
}
