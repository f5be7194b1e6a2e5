package ui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

// openBrowser is replaced in tests.
var openBrowser = browser.OpenURL

func init() {
	// The alt screen owns the terminal; launcher chatter would corrupt it.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// linkQueue is the controller.Linker of the app. Follow runs inside
// controller calls, so requests are queued and turned into commands after
// the controller returns.
type linkQueue struct {
	pending []string
}

func (q *linkQueue) Follow(target string) {
	q.pending = append(q.pending, target)
}

func (q *linkQueue) drain() []string {
	out := q.pending
	q.pending = nil
	return out
}

// OpenURL hands url to the system browser.
func OpenURL(url string) error {
	if err := openBrowser(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

func openURLCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{URL: url, Err: open(url)}
	}
}

func followLink(href string) tea.Cmd {
	return func() tea.Msg {
		return followLinkMsg{URL: href}
	}
}
