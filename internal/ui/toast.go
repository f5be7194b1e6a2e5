package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/textutil"
)

const (
	toastTTL     = 3 * time.Second
	toastVisible = 3
)

// Toast is a transient status message.
type Toast struct {
	ID   int
	Text string
	Err  bool
}

// Toasts holds the messages currently on screen, newest last.
type Toasts struct {
	items []Toast
	next  int
}

// Push shows text and returns the command that expires it.
func (t *Toasts) Push(text string, isErr bool) tea.Cmd {
	t.next++
	id := t.next
	t.items = append(t.items, Toast{ID: id, Text: text, Err: isErr})
	if len(t.items) > toastVisible {
		t.items = t.items[len(t.items)-toastVisible:]
	}
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

// Expire removes the toast with id, if still shown.
func (t *Toasts) Expire(id int) {
	for i, it := range t.items {
		if it.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Items returns the visible toasts.
func (t *Toasts) Items() []Toast {
	return append([]Toast(nil), t.items...)
}

// Len returns the number of visible toasts.
func (t *Toasts) Len() int {
	return len(t.items)
}

// Lines renders each toast as a styled line no wider than width.
func (t *Toasts) Lines(width int) []string {
	lines := make([]string, 0, len(t.items))
	for _, it := range t.items {
		style := Styles.Toast
		if it.Err {
			style = Styles.Error
		}
		lines = append(lines, style.Render(textutil.Truncate(it.Text, max(width-2, 1))))
	}
	return lines
}
