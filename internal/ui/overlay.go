package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// View is a region with its own Elm-style model: the project modal and the
// contact form are Views hosted by AppModel.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Overlay is a view drawn above the page. While an overlay is on the stack
// it receives input before anything underneath.
type Overlay struct {
	View    View
	Dismiss []string // keys that close the overlay, e.g. "esc"
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return slices.Contains(o.Dismiss, key)
}

// OverlayStack holds the open overlays, topmost last.
type OverlayStack struct {
	items []Overlay
}

// Push adds an overlay on top.
func (s *OverlayStack) Push(o Overlay) {
	s.items = append(s.items, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.items) == 0 {
		return Overlay{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.items)
}

// UpdateTop routes msg to the top overlay and stores the view it returns.
// The caller runs the returned command.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := &s.items[len(s.items)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}
