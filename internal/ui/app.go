package ui

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/controller"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	wheelStep     = 3
	contactWidth  = 60
)

// Options configures an AppModel. Zero values select the defaults.
type Options struct {
	Logger    *slog.Logger
	Observer  controller.TransitionObserver // in addition to debug logging
	OpenURL   func(url string) error       // default: system browser
	Clipboard func(text string) error      // default: system clipboard
}

// AppModel is the root model: a navigation bar over a scrolling page, with
// project detail overlays on top.
type AppModel struct {
	Site     *content.Site
	Nav      *controller.NavigationController
	Cards    []*controller.ProjectDetailController
	NavBar   *NavBar
	Page     *Page
	Contact  *ContactForm
	Overlays OverlayStack
	Focus    *FocusManager
	Keys     KeyMap
	Help     help.Model
	Toasts   Toasts
	Selected int // focused project card

	logger    *slog.Logger
	links     linkQueue
	openURL   func(string) error
	copyText  func(string) error
	width     int
	height    int
	animating bool
	navView   string
	footView  string
	built     bool
	lastState pageState
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for site.
func NewAppModel(site *content.Site, opts Options) *AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &AppModel{
		Site:     site,
		Page:     NewPage(),
		Contact:  NewContactForm(),
		Keys:     DefaultKeyMap(),
		Help:     help.New(),
		logger:   logger,
		openURL:  opts.OpenURL,
		copyText: opts.Clipboard,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if a.openURL == nil {
		a.openURL = OpenURL
	}
	if a.copyText == nil {
		a.copyText = clipboard.WriteAll
	}

	observer := controller.MultiObserver(controller.LogObserver(logger), opts.Observer)
	a.Nav = controller.NewNavigationController(site.Navigation, a.Page, &a.links)
	a.Nav.SetObserver(observer)
	a.Nav.MissedAnchor = func(id string) {
		logger.Debug("anchor not found", "id", id)
	}
	a.Cards = make([]*controller.ProjectDetailController, len(site.Projects))
	for i, p := range site.Projects {
		a.Cards[i] = controller.NewProjectDetailController(p)
		a.Cards[i].SetObserver(observer)
	}
	a.NavBar = NewNavBar(a.Nav, site.Profile.Name)
	a.Focus = NewFocusManager(RegionPage, RegionMenu, RegionContact)
	a.Focus.OnChange = func(from, to Region) {
		if from == RegionContact {
			a.Contact.Deactivate()
		}
		logger.Debug("focus", "from", string(from), "to", string(to))
	}
	a.Contact.SetWidth(min(ContentWidth(a.width), contactWidth))
	a.layout()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.Site.Meta.Title == "" {
		return nil
	}
	return tea.SetWindowTitle(a.Site.Meta.Title)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.layout()
	return a, tea.Batch(cmd, a.flushLinks(), a.animate())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	page := strings.Split(a.Page.View(), "\n")
	for i, l := range a.Toasts.Lines(a.width) {
		w := lipgloss.Width(l)
		overlayAt(page, []string{l}, a.width, max(a.width-w-1, 0), i, w)
	}
	screen := a.navView + "\n" + strings.Join(page, "\n") + "\n" + a.footView
	if m := a.modal(); m != nil {
		return m.Compose(screen)
	}
	return screen
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Help.Width = msg.Width
		a.Contact.SetWidth(min(ContentWidth(msg.Width), contactWidth))
		if m := a.modal(); m != nil {
			m.Resize(msg.Width, msg.Height)
		}
		return nil
	case animFrameMsg:
		a.animating = false
		a.NavBar.Reveal.Step()
		a.Page.Step()
		return nil
	case toastExpiredMsg:
		a.Toasts.Expire(msg.ID)
		return nil
	case followLinkMsg:
		a.links.Follow(msg.URL)
		return nil
	case linkOpenedMsg:
		if msg.Err != nil {
			a.logger.Warn("open link", "url", msg.URL, "err", msg.Err)
			return a.Toasts.Push("Could not open "+msg.URL, true)
		}
		a.logger.Debug("opened link", "url", msg.URL)
		return nil
	case contactDraftMsg:
		a.Focus.SetFocus(RegionPage)
		uri := msg.Message.MailtoURI(a.Site.Contact.Email)
		copyText := a.copyText
		return func() tea.Msg {
			return clipboardMsg{URI: uri, Err: copyText(uri)}
		}
	case clipboardMsg:
		if msg.Err != nil {
			a.logger.Warn("copy contact draft", "err", msg.Err)
			return a.Toasts.Push(fmt.Sprintf("Could not copy draft: %v", msg.Err), true)
		}
		a.logger.Info("contact draft copied", "bytes", len(msg.URI))
		return a.Toasts.Push("Message drafted: mailto link copied to clipboard", false)
	case contactLeftMsg:
		a.Focus.SetFocus(RegionPage)
		return nil
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	if a.Contact.Active() {
		_, cmd := a.Contact.Update(msg)
		return cmd
	}
	return nil
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if k == "ctrl+c" {
		return tea.Quit
	}

	// Overlays receive input first.
	if ov, ok := a.Overlays.Peek(); ok {
		if ov.IsDismissKey(k) {
			if m := a.modal(); m != nil {
				m.Ctrl.Close()
			}
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if a.Focus.Is(RegionContact) && a.Contact.Active() {
		_, cmd := a.Contact.Update(msg)
		return cmd
	}

	if a.Focus.Is(RegionMenu) {
		return a.handleMenuKey(msg)
	}
	return a.handlePageKey(msg)
}

func (a *AppModel) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.Keys.Down):
		a.NavBar.MoveCursor(1)
	case key.Matches(msg, a.Keys.Up):
		a.NavBar.MoveCursor(-1)
	case key.Matches(msg, a.Keys.Open):
		a.Nav.ActivateIndex(a.NavBar.Cursor)
	case key.Matches(msg, a.Keys.NavItem):
		a.Nav.ActivateIndex(int(msg.String()[0] - '1'))
	case key.Matches(msg, a.Keys.Menu):
		a.Nav.Toggle()
	case msg.String() == "esc":
		a.Nav.Close()
	}
	return nil
}

func (a *AppModel) handlePageKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.Keys.Help):
		a.Help.ShowAll = !a.Help.ShowAll
	case key.Matches(msg, a.Keys.Menu):
		// The toggle only exists in the collapsed layout.
		if Compact(a.width) {
			a.NavBar.Cursor = 0
			a.Nav.Toggle()
		}
	case key.Matches(msg, a.Keys.NavItem):
		a.Nav.ActivateIndex(int(msg.String()[0] - '1'))
	case key.Matches(msg, a.Keys.Down):
		a.Page.ScrollBy(1)
	case key.Matches(msg, a.Keys.Up):
		a.Page.ScrollBy(-1)
	case key.Matches(msg, a.Keys.PageDown):
		a.Page.ScrollBy(a.Page.Viewport.Height)
	case key.Matches(msg, a.Keys.PageUp):
		a.Page.ScrollBy(-a.Page.Viewport.Height)
	case key.Matches(msg, a.Keys.Top):
		a.Page.ScrollToLine(0)
	case key.Matches(msg, a.Keys.Bottom):
		a.Page.ScrollToLine(a.Page.maxOffset())
	case key.Matches(msg, a.Keys.NextCard):
		a.selectCard(a.Selected + 1)
	case key.Matches(msg, a.Keys.PrevCard):
		a.selectCard(a.Selected - 1)
	case key.Matches(msg, a.Keys.Open):
		a.openCard(a.Selected)
	case key.Matches(msg, a.Keys.Follow):
		if a.Selected < len(a.Cards) {
			if href := a.Cards[a.Selected].Project().QuickAction().Href; href != "" {
				a.links.Follow(href)
			}
		}
	case key.Matches(msg, a.Keys.Contact):
		a.Focus.SetFocus(RegionContact)
		a.Page.ScrollToLine(a.Page.ContactLine())
		return a.Contact.Activate()
	case msg.String() == "esc":
		if a.Nav.IsMobileMenuOpen() {
			a.Nav.Close()
		}
	}
	return nil
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return cmd
		}
		if msg.Button == tea.MouseButtonWheelUp {
			a.Page.ScrollBy(-wheelStep)
		} else {
			a.Page.ScrollBy(wheelStep)
		}
		return nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if m := a.modal(); m != nil {
		m.Ctrl.HandlePointer(m.Classify(msg.X, msg.Y))
		if !m.Ctrl.IsOpen() {
			a.Overlays.Pop()
		}
		return nil
	}

	navH := a.NavBar.Height()
	if msg.Y < navH {
		hit, ok := a.NavBar.HitTest(msg.X, msg.Y)
		if !ok {
			return nil
		}
		switch hit.Kind {
		case navHitToggle:
			a.NavBar.Cursor = 0
			a.Nav.Toggle()
		case navHitItem:
			a.Nav.ActivateIndex(hit.Index)
		}
		return nil
	}
	if i, ok := a.Page.CardAt(msg.X, msg.Y-navH); ok {
		a.Selected = i
		a.openCard(i)
	}
	return nil
}

func (a *AppModel) selectCard(i int) {
	if len(a.Cards) == 0 {
		return
	}
	a.Selected = min(max(i, 0), len(a.Cards)-1)
	if r, ok := a.Page.Card(a.Selected); ok {
		a.Page.EnsureVisible(r)
	}
}

// openCard opens the detail overlay of card i. While an overlay is shown
// input never reaches the page, so at most one modal is open.
func (a *AppModel) openCard(i int) {
	if i < 0 || i >= len(a.Cards) || a.Overlays.Len() > 0 {
		return
	}
	ctrl := a.Cards[i]
	ctrl.Open()
	a.Overlays.Push(Overlay{
		View:    NewProjectModal(ctrl, i, a.width, a.height),
		Dismiss: a.Keys.Close.Keys(),
	})
}

// modal returns the project overlay on top of the stack, if any.
func (a *AppModel) modal() *ProjectModal {
	ov, ok := a.Overlays.Peek()
	if !ok {
		return nil
	}
	m, _ := ov.View.(*ProjectModal)
	return m
}

// OpenModal returns the project whose detail overlay is shown.
func (a *AppModel) OpenModal() (content.Project, bool) {
	if m := a.modal(); m != nil && m.Ctrl.IsOpen() {
		return m.Ctrl.Project(), true
	}
	return content.Project{}, false
}

// layout re-renders the chrome, sizes the page and rebuilds the document
// when anything it depends on changed.
func (a *AppModel) layout() {
	compact := Compact(a.width)
	a.NavBar.Sync(compact)
	switch {
	case compact && a.Nav.IsMobileMenuOpen():
		a.Focus.SetFocus(RegionMenu)
	case a.Focus.Is(RegionMenu):
		a.Focus.SetFocus(RegionPage)
	}

	a.navView = a.NavBar.Render(a.width)
	a.footView = a.Help.View(a.Keys)
	a.Page.SetSize(a.width, a.height-a.NavBar.Height()-lipgloss.Height(a.footView))

	st := pageState{
		width:    a.width,
		selected: a.Selected,
		cardOpen: a.openFlags(),
		contact:  a.Contact.View(),
	}
	if !a.built || !st.equal(a.lastState) {
		a.Page.SetDocument(buildDocument(a.Site, st))
		a.lastState = st
		a.built = true
	}
}

func (a *AppModel) openFlags() []bool {
	out := make([]bool, len(a.Cards))
	for i, c := range a.Cards {
		out[i] = c.IsOpen()
	}
	return out
}

// flushLinks turns queued Linker requests into browser commands.
func (a *AppModel) flushLinks() tea.Cmd {
	pending := a.links.drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, target := range pending {
		url := a.Site.ResolveHref(target)
		a.logger.Debug("follow link", "target", target, "url", url)
		cmds = append(cmds, openURLCmd(a.openURL, url))
	}
	return tea.Batch(cmds...)
}

// animate schedules the next frame while any animation is unsettled.
func (a *AppModel) animate() tea.Cmd {
	if a.animating || (a.NavBar.Reveal.Settled() && !a.Page.Animating()) {
		return nil
	}
	a.animating = true
	return animFrameCmd()
}

func (s pageState) equal(o pageState) bool {
	return s.width == o.width &&
		s.selected == o.selected &&
		s.contact == o.contact &&
		slices.Equal(s.cardOpen, o.cardOpen)
}
