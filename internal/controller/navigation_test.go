package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
)

// recordingScroller records scroll requests and matches only known anchors.
type recordingScroller struct {
	known    map[string]bool
	requests []string
}

func (r *recordingScroller) ScrollToAnchor(id string) bool {
	r.requests = append(r.requests, id)
	return r.known[id]
}

func testItems() []content.NavigationItem {
	return []content.NavigationItem{
		{Label: "Home", Target: "#"},
		{Label: "About", Target: "#about"},
		{Label: "Blog", Target: "https://blog.example.com"},
		{Label: "Nowhere", Target: ""},
	}
}

func TestNavigationController_StartsClosed(t *testing.T) {
	c := NewNavigationController(testItems(), nil, nil)
	assert.False(t, c.IsMobileMenuOpen())
	assert.Equal(t, NavClosed, c.State())
}

func TestNavigationController_TogglePairs(t *testing.T) {
	// Scenario A.
	c := NewNavigationController(testItems(), nil, nil)
	c.Toggle()
	assert.True(t, c.IsMobileMenuOpen())
	c.Toggle()
	assert.False(t, c.IsMobileMenuOpen())
}

func TestNavigationController_ToggleParity(t *testing.T) {
	for n := 0; n < 12; n++ {
		c := NewNavigationController(nil, nil, nil)
		for i := 0; i < n; i++ {
			c.Toggle()
		}
		assert.Equal(t, n%2 == 1, c.IsMobileMenuOpen(), "after %d toggles", n)
	}
}

func TestNavigationController_ActivateAnchorScrollsOnceAndCloses(t *testing.T) {
	// Scenario B.
	s := &recordingScroller{known: map[string]bool{"about": true}}
	c := NewNavigationController(testItems(), s, nil)

	c.Toggle()
	require.True(t, c.IsMobileMenuOpen())

	c.Activate(content.NavigationItem{Label: "About", Target: "#about"})
	assert.False(t, c.IsMobileMenuOpen())
	assert.Equal(t, []string{"about"}, s.requests)
}

func TestNavigationController_ActivateAlwaysCloses(t *testing.T) {
	for _, item := range testItems() {
		for _, open := range []bool{false, true} {
			c := NewNavigationController(testItems(), &recordingScroller{}, LinkerFunc(func(string) {}))
			if open {
				c.Toggle()
			}
			c.Activate(item)
			assert.False(t, c.IsMobileMenuOpen(), "item %q, open=%v", item.Label, open)
		}
	}
}

func TestNavigationController_MissingAnchorIsSwallowed(t *testing.T) {
	s := &recordingScroller{known: map[string]bool{}}
	var missed []string
	c := NewNavigationController(testItems(), s, nil)
	c.MissedAnchor = func(id string) { missed = append(missed, id) }

	c.Toggle()
	c.Activate(content.NavigationItem{Label: "Ghost", Target: "#ghost"})

	assert.False(t, c.IsMobileMenuOpen())
	assert.Equal(t, []string{"ghost"}, s.requests)
	assert.Equal(t, []string{"ghost"}, missed)
}

func TestNavigationController_HashAloneMeansTop(t *testing.T) {
	s := &recordingScroller{known: map[string]bool{"": true}}
	c := NewNavigationController(testItems(), s, nil)
	c.ActivateIndex(0)
	assert.Equal(t, []string{""}, s.requests)
}

func TestNavigationController_NonAnchorFollowsLink(t *testing.T) {
	s := &recordingScroller{}
	var followed []string
	c := NewNavigationController(testItems(), s, LinkerFunc(func(target string) {
		followed = append(followed, target)
	}))

	c.Toggle()
	c.ActivateIndex(2)

	assert.Equal(t, []string{"https://blog.example.com"}, followed)
	assert.Empty(t, s.requests)
	assert.False(t, c.IsMobileMenuOpen())
}

func TestNavigationController_EmptyTargetDoesNothingButClose(t *testing.T) {
	s := &recordingScroller{}
	followed := 0
	c := NewNavigationController(testItems(), s, LinkerFunc(func(string) { followed++ }))
	c.Toggle()
	c.ActivateIndex(3)

	assert.Empty(t, s.requests)
	assert.Zero(t, followed)
	assert.False(t, c.IsMobileMenuOpen())
}

func TestNavigationController_ActivateIndexOutOfRange(t *testing.T) {
	c := NewNavigationController(testItems(), nil, nil)
	c.Toggle()
	assert.False(t, c.ActivateIndex(-1))
	assert.False(t, c.ActivateIndex(len(testItems())))
	assert.True(t, c.IsMobileMenuOpen(), "ignored activation must not close the menu")
}

func TestNavigationController_ItemsIsCopy(t *testing.T) {
	c := NewNavigationController(testItems(), nil, nil)
	items := c.Items()
	items[0].Label = "mutated"
	assert.Equal(t, "Home", c.Items()[0].Label)
}

func TestNavigationController_Observer(t *testing.T) {
	var got []Transition
	c := NewNavigationController(testItems(), nil, nil)
	c.SetObserver(func(tr Transition) { got = append(got, tr) })

	c.Toggle()
	c.ActivateIndex(1)
	c.ActivateIndex(1)

	require.Len(t, got, 3)
	assert.Equal(t, Transition{Controller: "navigation", Event: "toggle", From: "closed", To: "open"}, got[0])
	assert.Equal(t, Transition{Controller: "navigation", Event: "activate", From: "open", To: "closed"}, got[1])
	assert.False(t, got[2].Changed())
}
