package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// document is the rendered page plus the positions the UI needs to act on it.
// All coordinates are document coordinates (line 0 is the first page line).
type document struct {
	lines   []string
	anchors map[string]int
	cards   []Rect // index matches site.Projects
	contact int    // first line of the contact form
}

// docBuilder appends rendered blocks and records anchors.
type docBuilder struct {
	doc    document
	margin string
}

func newDocBuilder(margin int) *docBuilder {
	return &docBuilder{
		doc:    document{anchors: make(map[string]int)},
		margin: strings.Repeat(" ", margin),
	}
}

// anchor marks the next line as the target of "#id".
func (b *docBuilder) anchor(id string) {
	b.doc.anchors[id] = len(b.doc.lines)
}

// add appends a (possibly multi-line) block with the left margin and
// returns its first line.
func (b *docBuilder) add(block string) int {
	start := len(b.doc.lines)
	for _, l := range strings.Split(block, "\n") {
		b.doc.lines = append(b.doc.lines, b.margin+l)
	}
	return start
}

func (b *docBuilder) blank() {
	b.doc.lines = append(b.doc.lines, "")
}

func (b *docBuilder) line() int {
	return len(b.doc.lines)
}

// Page is the scrollable body below the navigation bar. It implements
// controller.Scroller by resolving anchors against the current document.
type Page struct {
	Viewport viewport.Model
	Scroll   Tween
	doc      document
}

// NewPage creates an empty page.
func NewPage() *Page {
	vp := viewport.New(0, 0)
	return &Page{Viewport: vp, Scroll: NewTween(0)}
}

// SetSize resizes the visible area.
func (p *Page) SetSize(width, height int) {
	p.Viewport.Width = width
	p.Viewport.Height = max(height, 1)
	p.clamp()
}

// SetDocument swaps the page content, keeping the scroll position.
func (p *Page) SetDocument(d document) {
	p.doc = d
	p.Viewport.SetContent(strings.Join(d.lines, "\n"))
	p.clamp()
}

// ScrollToAnchor requests a smooth scroll to the section with the given id.
// "" means the top of the page. It returns false when no section matches.
func (p *Page) ScrollToAnchor(id string) bool {
	if id == "" {
		p.ScrollToLine(0)
		return true
	}
	line, ok := p.doc.anchors[id]
	if !ok {
		return false
	}
	p.ScrollToLine(line)
	return true
}

// ScrollToLine animates the viewport so that line is at the top.
func (p *Page) ScrollToLine(line int) {
	p.Scroll.SetTarget(float64(min(max(line, 0), p.maxOffset())))
}

// ScrollBy moves the viewport immediately, cancelling any smooth scroll.
func (p *Page) ScrollBy(delta int) {
	p.JumpTo(p.Viewport.YOffset + delta)
}

// JumpTo moves the viewport immediately.
func (p *Page) JumpTo(line int) {
	line = min(max(line, 0), p.maxOffset())
	p.Viewport.SetYOffset(line)
	p.Scroll.Jump(float64(line))
}

// EnsureVisible scrolls just enough to show r.
func (p *Page) EnsureVisible(r Rect) {
	top := p.Viewport.YOffset
	bottom := top + p.Viewport.Height
	switch {
	case r.Y < top:
		p.ScrollToLine(r.Y)
	case r.Y+r.H > bottom:
		p.ScrollToLine(min(r.Y, r.Y+r.H-p.Viewport.Height))
	}
}

// Step advances the smooth scroll one frame and reports whether it is still moving.
func (p *Page) Step() bool {
	moving := p.Scroll.Step()
	p.Viewport.SetYOffset(p.Scroll.Value())
	return moving
}

// Animating reports whether a smooth scroll is in progress.
func (p *Page) Animating() bool {
	return !p.Scroll.Settled()
}

// Offset returns the first visible document line.
func (p *Page) Offset() int {
	return p.Viewport.YOffset
}

// CardAt maps a page-relative cell to a project card index.
func (p *Page) CardAt(x, y int) (int, bool) {
	docY := y + p.Viewport.YOffset
	for i, r := range p.doc.cards {
		if r.Contains(x, docY) {
			return i, true
		}
	}
	return 0, false
}

// Card returns the document rectangle of card i.
func (p *Page) Card(i int) (Rect, bool) {
	if i < 0 || i >= len(p.doc.cards) {
		return Rect{}, false
	}
	return p.doc.cards[i], true
}

// ContactLine returns the first line of the contact form.
func (p *Page) ContactLine() int {
	return p.doc.contact
}

// View renders the visible slice.
func (p *Page) View() string {
	return p.Viewport.View()
}

func (p *Page) maxOffset() int {
	return max(len(p.doc.lines)-p.Viewport.Height, 0)
}

func (p *Page) clamp() {
	off := p.maxOffset()
	if p.Scroll.Target() > float64(off) {
		p.Scroll.SetTarget(float64(off))
	}
	if p.Viewport.YOffset > off {
		p.JumpTo(off)
	}
}
