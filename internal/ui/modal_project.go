package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"folio/internal/content"
	"folio/internal/controller"
	"folio/internal/ui/textutil"
)

const (
	modalPadX     = 2
	modalPadY     = 1
	modalMaxWidth = 76
	modalMinWidth = 24
	modalClose    = "[x]"
	modalHint     = "esc/x close · o open link · j/k scroll"
)

// ProjectModal is the detail overlay of one project card. It is driven by
// the card's ProjectDetailController; the modal itself never decides
// whether it is open.
type ProjectModal struct {
	Ctrl  *controller.ProjectDetailController
	Index int // card index in the grid

	body   viewport.Model
	width  int // screen
	height int
	panel  Rect // screen coordinates of the panel, border included
	close  Rect // screen coordinates of the close button
}

// NewProjectModal creates the overlay for ctrl laid out on a width x height screen.
func NewProjectModal(ctrl *controller.ProjectDetailController, index, width, height int) *ProjectModal {
	m := &ProjectModal{Ctrl: ctrl, Index: index, body: viewport.New(0, 0)}
	m.Resize(width, height)
	return m
}

func (m *ProjectModal) innerWidth() int {
	panelW := min(m.width-4, modalMaxWidth)
	panelW = max(panelW, modalMinWidth)
	return panelW - 2 - 2*modalPadX
}

// Resize recomputes the panel geometry for a new screen size.
func (m *ProjectModal) Resize(width, height int) {
	m.width, m.height = width, height
	innerW := m.innerWidth()
	lines := strings.Split(m.bodyContent(innerW), "\n")

	// border, padding, header, spacers and hint around the body
	chrome := 2 + 2*modalPadY + 4
	bodyH := min(len(lines), max(height-2-chrome, 1))
	m.body.Width = innerW
	m.body.Height = bodyH
	m.body.SetContent(strings.Join(lines, "\n"))

	panelW := innerW + 2 + 2*modalPadX
	panelH := bodyH + chrome
	m.panel = Rect{
		X: max((width-panelW)/2, 0),
		Y: max((height-panelH)/2, 0),
		W: panelW,
		H: panelH,
	}
	m.close = Rect{
		X: m.panel.X + 1 + modalPadX + innerW - textutil.VisualWidth(modalClose),
		Y: m.panel.Y + 1 + modalPadY,
		W: textutil.VisualWidth(modalClose),
		H: 1,
	}
}

func (m *ProjectModal) bodyContent(width int) string {
	p := m.Ctrl.Project()
	var b strings.Builder
	if p.Image != "" {
		b.WriteString(Styles.Muted.Render("image: " + p.Image))
		b.WriteString("\n")
	}
	b.WriteString(strings.TrimRight(RenderMarkdown(p.Description, width), "\n"))
	b.WriteString("\n\n")
	b.WriteString(Styles.CardTitle.Render("Technologies"))
	b.WriteString("\n")
	b.WriteString(strings.Join(textutil.WrapTokens(badges(p.Technologies, Styles.Badge), width, " "), "\n"))
	if p.Link != "" {
		b.WriteString("\n\n")
		b.WriteString(Styles.Muted.Render("Link: ") + Styles.Link.Render(textutil.Truncate(p.Link, width-6)))
	}
	if a := p.QuickAction(); a.Kind != content.ActionRepository {
		b.WriteString("\n")
		b.WriteString(Styles.Muted.Render(actionLabel(a)+": ") + Styles.Link.Render(textutil.Truncate(a.Href, width-10)))
	}
	return b.String()
}

// Classify maps a screen cell to the element a click landed on.
func (m *ProjectModal) Classify(x, y int) controller.PointerTarget {
	switch {
	case m.close.Contains(x, y):
		return controller.TargetCloseButton
	case m.panel.Contains(x, y):
		return controller.TargetPanel
	default:
		return controller.TargetBackdrop
	}
}

// Panel returns the panel rectangle in screen coordinates.
func (m *ProjectModal) Panel() Rect {
	return m.panel
}

// CloseButton returns the close button rectangle in screen coordinates.
func (m *ProjectModal) CloseButton() Rect {
	return m.close
}

func (m *ProjectModal) Init() tea.Cmd {
	return nil
}

func (m *ProjectModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.body.ScrollDown(1)
		case "k", "up":
			m.body.ScrollUp(1)
		case "pgdown", " ":
			m.body.PageDown()
		case "pgup":
			m.body.PageUp()
		case "o":
			if href := m.Ctrl.Project().QuickAction().Href; href != "" {
				return m, followLink(href)
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.body.ScrollDown(2)
		case tea.MouseButtonWheelUp:
			m.body.ScrollUp(2)
		}
	}
	return m, nil
}

// View renders the panel alone.
func (m *ProjectModal) View() string {
	innerW := m.innerWidth()
	closeW := textutil.VisualWidth(modalClose)
	title := textutil.Truncate(m.Ctrl.Project().Title, innerW-closeW-1)
	header := Styles.Title.Render(textutil.PadRightVisual(title, innerW-closeW)) + Styles.ButtonFocus.Render(modalClose)

	body := m.body.View()
	hint := Styles.Hint.Render(textutil.Truncate(modalHint, innerW))
	if !m.body.AtBottom() {
		hint = Styles.Hint.Render(textutil.Truncate("↓ more · "+modalHint, innerW))
	}
	inner := strings.Join([]string{header, "", body, "", hint}, "\n")
	return Styles.Modal.Width(innerW + 2*modalPadX).Render(inner)
}

// Compose dims base and draws the panel on top of it.
func (m *ProjectModal) Compose(base string) string {
	bg := strings.Split(base, "\n")
	for len(bg) < m.height {
		bg = append(bg, "")
	}
	for i, l := range bg {
		bg[i] = Styles.Backdrop.Render(textutil.PadRightVisual(xansi.Strip(l), m.width))
	}
	fg := strings.Split(m.View(), "\n")
	overlayAt(bg, fg, m.width, m.panel.X, m.panel.Y, lipgloss.Width(m.View()))
	return strings.Join(bg, "\n")
}

func overlayAt(bg, fg []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	for i := 0; i < len(fg) && y+i < len(bg); i++ {
		left := xansi.Cut(bg[y+i], 0, x)
		right := xansi.Cut(bg[y+i], x+fgW, w)
		line := fg[i]
		if n := xansi.StringWidth(line); n < fgW {
			line += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			line = xansi.Cut(line, 0, fgW)
		}
		bg[y+i] = left + line + right
	}
}
