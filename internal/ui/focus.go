package ui

// Region names a part of the screen that can hold keyboard focus.
type Region string

const (
	RegionPage    Region = "page"    // scrolling, nav shortcuts, project cards
	RegionMenu    Region = "menu"    // open mobile navigation panel
	RegionContact Region = "contact" // contact form fields
)

// FocusManager tracks which region receives keys. Order lists the regions
// that may hold focus.
type FocusManager struct {
	Current  Region
	Order    []Region
	OnChange func(from, to Region)
}

// NewFocusManager starts focused on the first region in order.
func NewFocusManager(order ...Region) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id Region) bool {
	for _, r := range f.Order {
		if r == id {
			f.set(id)
			return true
		}
	}
	return false
}

// Is reports whether id currently has focus.
func (f *FocusManager) Is(id Region) bool {
	return f.Current == id
}

func (f *FocusManager) set(to Region) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
