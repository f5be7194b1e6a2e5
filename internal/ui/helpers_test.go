package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func wheel(down bool) tea.MouseMsg {
	b := tea.MouseButtonWheelUp
	if down {
		b = tea.MouseButtonWheelDown
	}
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: b}
}

func testSite() *content.Site {
	site := &content.Site{
		Meta: content.Meta{Title: "Ada", BaseURL: "https://ada.example.com", Copyright: "© Ada"},
		Navigation: []content.NavigationItem{
			{Label: "Home", Target: "#"},
			{Label: "About", Target: "#about"},
			{Label: "Academic", Target: "#academic"},
			{Label: "Projects", Target: "#projects"},
			{Label: "Skills", Target: "#skills"},
			{Label: "Contact", Target: "#contact"},
			{Label: "Blog", Target: "https://blog.example.com"},
			{Label: "Lost", Target: "#nowhere"},
		},
		Profile: content.Profile{
			Name:     "Ada Lovelace",
			Headline: "Analyst of engines",
			Tagline:  "Notes on the analytical engine",
			Location: "London",
			About:    "I write **programs** for machines that do not exist yet.",
			CV:       "/static/cv.pdf",
		},
		Academic: []content.Degree{
			{Title: "Mathematics", Institution: "Home tutoring", Period: "1830 - 1835", Status: "Completed", Description: "Private lessons."},
			{Title: "Engines", Institution: "Correspondence", Period: "1840 - now", Status: "In Progress", Description: "Letters with Babbage."},
		},
		Projects: []content.Project{
			{Slug: "notes", Title: "Notes", Summary: "Translation with notes.", Description: "The famous *Note G*.", Technologies: []string{"Math"}, Link: "https://example.com/notes"},
			{Slug: "bernoulli", Title: "Bernoulli", Summary: "Computes Bernoulli numbers.", Description: "A program.", Technologies: []string{"Engine"}, Link: "https://example.com/b",
				Action: &content.Action{Kind: content.ActionDownload, Href: "/static/b.pdf"}},
			{Slug: "loom", Title: "Loom", Summary: "Punched cards.", Description: "Jacquard.", Technologies: []string{"Cards"}, Link: "https://example.com/loom"},
		},
		Skills: []content.SkillCategory{
			{Title: "Mathematics", Items: []string{"Calculus", "Series"}},
		},
		Contact: content.Contact{Heading: "Write to me", Email: "ada@example.com"},
	}
	return site
}

type fakeHost struct {
	opened  []string
	copied  []string
	openErr error
}

func (h *fakeHost) open(url string) error {
	h.opened = append(h.opened, url)
	return h.openErr
}

func (h *fakeHost) copy(text string) error {
	h.copied = append(h.copied, text)
	return nil
}

// newTestApp builds an app sized width x height with fake browser and clipboard.
func newTestApp(t *testing.T, width, height int) (*AppModel, tea.Model, *fakeHost) {
	t.Helper()
	host := &fakeHost{}
	a := NewAppModel(testSite(), Options{OpenURL: host.open, Clipboard: host.copy})
	m := a.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	require.Equal(t, width, a.width)
	return a, m, host
}

// settle runs animation frames until everything is at rest.
func settle(t *testing.T, m tea.Model, a *AppModel) {
	t.Helper()
	for i := 0; i < 10*animFPS; i++ {
		if a.NavBar.Reveal.Settled() && !a.Page.Animating() {
			return
		}
		m.Update(animFrameMsg{})
	}
	t.Fatal("animations did not settle")
}

// runCmd executes cmd synchronously and returns the messages it produced.
// Only use it on commands known not to sleep.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
