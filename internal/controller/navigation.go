package controller

import "folio/internal/content"

// NavState is the state of the mobile navigation panel.
type NavState int

const (
	NavClosed NavState = iota
	NavOpen
)

func (s NavState) String() string {
	if s == NavOpen {
		return "open"
	}
	return "closed"
}

// Scroller resolves an in-page anchor and scrolls to it.
// id is the anchor without '#'; "" means the top of the page.
// It returns false when no element matches.
type Scroller interface {
	ScrollToAnchor(id string) bool
}

// Linker performs default link navigation for non-anchor targets.
type Linker interface {
	Follow(target string)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(id string) bool

// ScrollToAnchor implements Scroller.
func (f ScrollerFunc) ScrollToAnchor(id string) bool { return f(id) }

// LinkerFunc adapts a function to Linker.
type LinkerFunc func(target string)

// Follow implements Linker.
func (f LinkerFunc) Follow(target string) { f(target) }

// NavigationController owns the "mobile menu open" flag and the ordered item list.
//
// State machine: Closed (initial) <-> Open via Toggle; Activate always ends in Closed.
type NavigationController struct {
	items    []content.NavigationItem
	state    NavState
	scroller Scroller
	linker   Linker
	observer TransitionObserver
	// MissedAnchor, if set, is called when an anchor has no matching element.
	MissedAnchor func(id string)
}

// NewNavigationController creates a controller in the Closed state.
// scroller and linker may be nil; the corresponding requests are then dropped.
func NewNavigationController(items []content.NavigationItem, scroller Scroller, linker Linker) *NavigationController {
	own := make([]content.NavigationItem, len(items))
	copy(own, items)
	return &NavigationController{
		items:    own,
		state:    NavClosed,
		scroller: scroller,
		linker:   linker,
	}
}

// SetObserver installs the transition observer.
func (c *NavigationController) SetObserver(o TransitionObserver) {
	c.observer = o
}

// Items returns a copy of the navigation items in order.
func (c *NavigationController) Items() []content.NavigationItem {
	out := make([]content.NavigationItem, len(c.items))
	copy(out, c.items)
	return out
}

// State returns the current panel state.
func (c *NavigationController) State() NavState {
	return c.state
}

// IsMobileMenuOpen reports whether the mobile panel is open.
func (c *NavigationController) IsMobileMenuOpen() bool {
	return c.state == NavOpen
}

// Toggle flips the mobile menu flag.
func (c *NavigationController) Toggle() {
	from := c.state
	if c.state == NavOpen {
		c.state = NavClosed
	} else {
		c.state = NavOpen
	}
	c.notify("toggle", from)
}

// Close sets the flag to false. Idempotent.
func (c *NavigationController) Close() {
	from := c.state
	c.state = NavClosed
	c.notify("close", from)
}

// Activate follows item: anchors are scrolled to, anything else goes to the
// Linker. A missing anchor target is tolerated. The menu is closed afterwards
// regardless of prior state.
func (c *NavigationController) Activate(item content.NavigationItem) {
	switch {
	case item.IsAnchor():
		id := item.AnchorID()
		found := false
		if c.scroller != nil {
			found = c.scroller.ScrollToAnchor(id)
		}
		if !found && c.MissedAnchor != nil {
			c.MissedAnchor(id)
		}
	case item.Target != "":
		if c.linker != nil {
			c.linker.Follow(item.Target)
		}
	}
	from := c.state
	c.state = NavClosed
	c.notify("activate", from)
}

// ActivateIndex activates the i-th item. Out-of-range indexes are ignored
// and report false.
func (c *NavigationController) ActivateIndex(i int) bool {
	if i < 0 || i >= len(c.items) {
		return false
	}
	c.Activate(c.items[i])
	return true
}

func (c *NavigationController) notify(event string, from NavState) {
	if c.observer == nil {
		return
	}
	c.observer(Transition{
		Controller: "navigation",
		Event:      event,
		From:       from.String(),
		To:         c.state.String(),
	})
}
