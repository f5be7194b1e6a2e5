// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string,
// ignoring ANSI escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate cuts s to at most maxWidth columns, ending in "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, available, "") + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating if wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// Wrap breaks plain text into lines of at most width columns on word
// boundaries. Words longer than width are truncated.
func Wrap(s string, width int) []string {
	return WrapTokens(strings.Fields(s), width, " ")
}

// WrapTokens lays tokens out left to right, joined by sep, starting a new
// line whenever the next token would exceed width.
func WrapTokens(tokens []string, width int, sep string) []string {
	if width <= 0 || len(tokens) == 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	sepW := VisualWidth(sep)
	for _, tok := range tokens {
		tw := VisualWidthStyled(tok)
		if tw > width {
			tok = xansi.Truncate(tok, width, TruncateEllipsis)
			tw = width
		}
		if curW > 0 && curW+sepW+tw > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteString(sep)
			curW += sepW
		}
		cur.WriteString(tok)
		curW += tw
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Clamp keeps at most n lines, marking the last kept line with "…" when
// lines were dropped.
func Clamp(lines []string, n, width int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	last := out[n-1]
	if VisualWidth(last)+VisualWidth(TruncateEllipsis) > width {
		last = Truncate(last, width)
		if !strings.HasSuffix(last, TruncateEllipsis) {
			last = Truncate(last, width-1) + TruncateEllipsis
		}
	} else {
		last += TruncateEllipsis
	}
	out[n-1] = last
	return out
}
