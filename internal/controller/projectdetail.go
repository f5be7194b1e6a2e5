package controller

import "folio/internal/content"

// ModalState is the visibility of a project's detail overlay.
type ModalState int

const (
	ModalHidden ModalState = iota
	ModalShown
)

func (s ModalState) String() string {
	if s == ModalShown {
		return "shown"
	}
	return "hidden"
}

// PointerTarget identifies which element a pointer interaction landed on.
// The view layer classifies the event origin; the controller only decides.
type PointerTarget int

const (
	// TargetNone is outside the overlay entirely (overlay not rendered).
	TargetNone PointerTarget = iota
	// TargetBackdrop is the overlay element itself, outside the detail panel.
	TargetBackdrop
	// TargetPanel is the detail panel or any of its descendants.
	TargetPanel
	// TargetCloseButton is the explicit close affordance inside the panel.
	TargetCloseButton
)

func (t PointerTarget) String() string {
	switch t {
	case TargetBackdrop:
		return "backdrop"
	case TargetPanel:
		return "panel"
	case TargetCloseButton:
		return "close"
	default:
		return "none"
	}
}

// ProjectDetailController owns the modal flag of a single project card.
//
// State machine: Hidden (initial) -> Shown via Open, Shown -> Hidden via
// Close. Both transitions are idempotent.
type ProjectDetailController struct {
	project  content.Project
	state    ModalState
	observer TransitionObserver
}

// NewProjectDetailController creates a Hidden controller for p.
func NewProjectDetailController(p content.Project) *ProjectDetailController {
	return &ProjectDetailController{project: p, state: ModalHidden}
}

// SetObserver installs the transition observer.
func (c *ProjectDetailController) SetObserver(o TransitionObserver) {
	c.observer = o
}

// Project returns the subject of the modal.
func (c *ProjectDetailController) Project() content.Project {
	return c.project
}

// State returns the modal state.
func (c *ProjectDetailController) State() ModalState {
	return c.state
}

// IsOpen reports whether the overlay is shown.
func (c *ProjectDetailController) IsOpen() bool {
	return c.state == ModalShown
}

// Open shows the overlay.
func (c *ProjectDetailController) Open() {
	c.set(ModalShown, "open")
}

// Close hides the overlay.
func (c *ProjectDetailController) Close() {
	c.set(ModalHidden, "close")
}

// HandlePointer applies a pointer interaction. Only the backdrop itself and
// the close affordance close the modal; anything inside the panel is
// contained. Interactions while Hidden are ignored.
// It reports whether the interaction closed the modal.
func (c *ProjectDetailController) HandlePointer(target PointerTarget) bool {
	if c.state != ModalShown {
		return false
	}
	switch target {
	case TargetBackdrop, TargetCloseButton:
		c.Close()
		return true
	}
	return false
}

func (c *ProjectDetailController) set(to ModalState, event string) {
	from := c.state
	c.state = to
	if c.observer != nil {
		c.observer(Transition{
			Controller: "project:" + c.project.Slug,
			Event:      event,
			From:       from.String(),
			To:         to.String(),
		})
	}
}
