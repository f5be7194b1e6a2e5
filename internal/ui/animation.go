package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	animFPS       = 60
	animFrequency = 7.0
	animDamping   = 1.0 // critically damped: no overshoot
	animEpsilon   = 0.01
)

// animFrameMsg advances all running animations by one frame.
type animFrameMsg struct{}

func animFrameCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(time.Time) tea.Msg {
		return animFrameMsg{}
	})
}

// Tween interpolates a value toward a target with a spring. Animations are
// presentation only: setting a target never waits on the previous one.
type Tween struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewTween creates a tween resting at v.
func NewTween(v float64) Tween {
	return Tween{
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), animFrequency, animDamping),
		pos:    v,
		target: v,
	}
}

// SetTarget retargets the tween from wherever it currently is.
func (t *Tween) SetTarget(v float64) {
	t.target = v
}

// Jump moves the tween to v immediately.
func (t *Tween) Jump(v float64) {
	t.pos, t.vel, t.target = v, 0, v
}

// Step advances one frame. It reports whether the tween is still moving.
func (t *Tween) Step() bool {
	if t.Settled() {
		t.pos, t.vel = t.target, 0
		return false
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	if t.Settled() {
		t.pos, t.vel = t.target, 0
		return false
	}
	return true
}

// Settled reports whether the tween has reached its target.
func (t *Tween) Settled() bool {
	return math.Abs(t.pos-t.target) < animEpsilon && math.Abs(t.vel) < animEpsilon
}

// Value returns the current position rounded to whole cells.
func (t *Tween) Value() int {
	return int(math.Round(t.pos))
}

// Target returns the value the tween is heading to.
func (t *Tween) Target() float64 {
	return t.target
}
