package ui

import (
	"fmt"
	"strings"

	"folio/internal/controller"
	"folio/internal/ui/textutil"
)

const (
	navItemGap    = 3
	navToggleOpen = "[✕]"
	navToggleShut = "[☰]"
)

type navHitKind int

const (
	navHitToggle navHitKind = iota
	navHitItem
)

// navHit is a clickable cell range in the navigation bar (screen coordinates).
type navHit struct {
	Rect  Rect
	Kind  navHitKind
	Index int
}

// NavBar renders the navigation controller. On wide terminals the items are
// always inline; below NavBreakpoint they sit behind a toggle and reveal
// with a spring animation.
type NavBar struct {
	Nav    *controller.NavigationController
	Brand  string
	Cursor int   // highlighted item in the open mobile panel
	Reveal Tween // number of mobile rows currently drawn

	hits   []navHit
	height int
}

// NewNavBar creates a bar for nav.
func NewNavBar(nav *controller.NavigationController, brand string) *NavBar {
	return &NavBar{Nav: nav, Brand: brand, Reveal: NewTween(0)}
}

// Sync retargets the reveal animation to the controller state.
// It reports whether an animation frame is needed.
func (b *NavBar) Sync(compact bool) bool {
	target := 0.0
	if compact && b.Nav.IsMobileMenuOpen() {
		target = float64(len(b.Nav.Items()))
	}
	if !compact {
		b.Reveal.Jump(0)
		return false
	}
	if b.Reveal.Target() != target {
		b.Reveal.SetTarget(target)
	}
	return !b.Reveal.Settled()
}

// MoveCursor moves the mobile highlight by delta, clamped to the item list.
func (b *NavBar) MoveCursor(delta int) {
	n := len(b.Nav.Items())
	if n == 0 {
		return
	}
	b.Cursor += delta
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	if b.Cursor >= n {
		b.Cursor = n - 1
	}
}

// Height returns the number of lines produced by the last Render.
func (b *NavBar) Height() int {
	return b.height
}

// HitTest maps a screen cell to a bar element.
func (b *NavBar) HitTest(x, y int) (navHit, bool) {
	for _, h := range b.hits {
		if h.Rect.Contains(x, y) {
			return h, true
		}
	}
	return navHit{}, false
}

// Render draws the bar at the given terminal width and records hit regions.
func (b *NavBar) Render(width int) string {
	b.hits = b.hits[:0]
	items := b.Nav.Items()
	brand := Styles.Brand.Render(b.Brand)
	brandW := textutil.VisualWidthStyled(brand)

	var lines []string
	if !Compact(width) {
		labels := make([]string, len(items))
		total := 0
		for i, it := range items {
			labels[i] = fmt.Sprintf("%d %s", i+1, it.Label)
			total += textutil.VisualWidth(labels[i])
		}
		total += navItemGap * max(len(items)-1, 0)
		x := max(width-total-1, brandW+navItemGap)
		var row strings.Builder
		row.WriteString(brand)
		row.WriteString(strings.Repeat(" ", x-brandW))
		for i, l := range labels {
			if i > 0 {
				row.WriteString(strings.Repeat(" ", navItemGap))
				x += navItemGap
			}
			w := textutil.VisualWidth(l)
			b.hits = append(b.hits, navHit{Rect: Rect{X: x, Y: 0, W: w, H: 1}, Kind: navHitItem, Index: i})
			row.WriteString(Styles.NavItem.Render(l))
			x += w
		}
		lines = append(lines, row.String())
	} else {
		toggle := navToggleShut
		if b.Nav.IsMobileMenuOpen() {
			toggle = navToggleOpen
		}
		tw := textutil.VisualWidth(toggle)
		x := max(width-tw-1, brandW+1)
		lines = append(lines, brand+strings.Repeat(" ", x-brandW)+Styles.NavItem.Render(toggle))
		b.hits = append(b.hits, navHit{Rect: Rect{X: x, Y: 0, W: tw, H: 1}, Kind: navHitToggle})

		rows := min(b.Reveal.Value(), len(items))
		open := b.Nav.IsMobileMenuOpen()
		for i := 0; i < rows; i++ {
			label := fmt.Sprintf("  %d %s", i+1, items[i].Label)
			style := Styles.NavItem
			switch {
			case !open:
				style = Styles.Muted
			case i == b.Cursor:
				style = Styles.NavSelected
				label = "▸" + label[1:]
			}
			lines = append(lines, style.Render(label))
			if open {
				b.hits = append(b.hits, navHit{
					Rect:  Rect{X: 0, Y: len(lines) - 1, W: width, H: 1},
					Kind:  navHitItem,
					Index: i,
				})
			}
		}
	}
	lines = append(lines, Styles.Muted.Render(strings.Repeat("─", max(width, 1))))
	b.height = len(lines)
	return strings.Join(lines, "\n")
}
