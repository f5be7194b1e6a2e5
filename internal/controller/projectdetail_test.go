package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"folio/internal/content"
)

func movieProject() content.Project {
	return content.Project{
		Slug:         "movie-recommendation-system",
		Title:        "Movie Recommendation System",
		Technologies: []string{"Python", "Scikit-learn", "Streamlit"},
		Link:         "https://github.com/aminebouanani/movie-recommender",
	}
}

func TestProjectDetailController_OpenIsIdempotent(t *testing.T) {
	// Scenario C.
	c := NewProjectDetailController(movieProject())
	assert.False(t, c.IsOpen())

	c.Open()
	assert.True(t, c.IsOpen())
	for i := 0; i < 5; i++ {
		c.Open()
		assert.True(t, c.IsOpen())
	}

	c.Close()
	assert.False(t, c.IsOpen())
	c.Close()
	assert.False(t, c.IsOpen())
}

func TestProjectDetailController_PointerTargets(t *testing.T) {
	// Scenario D.
	tests := []struct {
		target     PointerTarget
		wantClosed bool
	}{
		{TargetBackdrop, true},
		{TargetCloseButton, true},
		{TargetPanel, false},
		{TargetNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			c := NewProjectDetailController(movieProject())
			c.Open()
			closed := c.HandlePointer(tt.target)
			assert.Equal(t, tt.wantClosed, closed)
			assert.Equal(t, !tt.wantClosed, c.IsOpen())
		})
	}
}

func TestProjectDetailController_PointerWhileHiddenIgnored(t *testing.T) {
	c := NewProjectDetailController(movieProject())
	var events int
	c.SetObserver(func(Transition) { events++ })

	assert.False(t, c.HandlePointer(TargetBackdrop))
	assert.False(t, c.IsOpen())
	assert.Zero(t, events)
}

func TestProjectDetailController_InstancesAreIndependent(t *testing.T) {
	a := NewProjectDetailController(movieProject())
	b := NewProjectDetailController(content.Project{Slug: "co2", Title: "CO₂ Emissions Analysis"})

	a.Open()
	assert.True(t, a.IsOpen())
	assert.False(t, b.IsOpen())

	b.Open()
	a.Close()
	assert.False(t, a.IsOpen())
	assert.True(t, b.IsOpen())
}

func TestProjectDetailController_ObserverNamesProject(t *testing.T) {
	var got []Transition
	c := NewProjectDetailController(movieProject())
	c.SetObserver(MultiObserver(nil, func(tr Transition) { got = append(got, tr) }))

	c.Open()
	c.HandlePointer(TargetPanel)
	c.HandlePointer(TargetBackdrop)

	assert.Equal(t, []Transition{
		{Controller: "project:movie-recommendation-system", Event: "open", From: "hidden", To: "shown"},
		{Controller: "project:movie-recommendation-system", Event: "close", From: "shown", To: "hidden"},
	}, got)
}
