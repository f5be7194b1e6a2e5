package ui

// Width breakpoints
const (
	// NavBreakpoint is the narrowest width at which all navigation items
	// fit inline; below it the bar collapses behind a toggle.
	NavBreakpoint = 90

	// TwoColumnWidth switches the project and skill grids to two columns.
	TwoColumnWidth = 80

	// ThreeColumnWidth switches the grids to three columns.
	ThreeColumnWidth = 120

	// MaxContentWidth caps line length on very wide terminals.
	MaxContentWidth = 140
)

// Compact reports whether width is below the navigation breakpoint.
func Compact(width int) bool {
	return width < NavBreakpoint
}

// GridColumns returns how many cards fit side by side at width.
func GridColumns(width int) int {
	switch {
	case width >= ThreeColumnWidth:
		return 3
	case width >= TwoColumnWidth:
		return 2
	default:
		return 1
	}
}

// ContentWidth returns the usable line width for a terminal width.
func ContentWidth(width int) int {
	w := width - 2
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Rect is a cell-aligned rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
