package overlay

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseDim    = "○"
	pulseBright = "●"

	pulseAngularFrequency = 6.0
	pulseDampingRatio     = 0.6

	// Ticks spent at each end of the swing
	pulseHoldTicks = 4

	pulseThreshold = 0.5
	pulseHigh      = 1.0
	pulseLow       = 0.0
)

// Pulse is the unread indicator on the compact banner, driven by a spring
type Pulse struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	active   bool
	ticks    int
}

// NewPulse creates an idle pulse
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(FramesPerSecond), pulseAngularFrequency, pulseDampingRatio),
	}
}

// SetActive starts or stops the pulse; stopping resets it to the dim frame
func (p *Pulse) SetActive(active bool) {
	if p.active == active {
		return
	}

	p.active = active
	if !active {
		p.position = pulseLow
		p.velocity = pulseLow
		p.target = pulseLow
		p.ticks = 0
	}
}

// Update advances the spring by one frame
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.ticks++
	if p.ticks >= pulseHoldTicks {
		p.ticks = 0

		if p.target == pulseHigh {
			p.target = pulseLow
		} else {
			p.target = pulseHigh
		}
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// Frame returns the glyph for the current spring position
func (p *Pulse) Frame() string {
	if !p.active || p.position < pulseThreshold {
		return pulseDim
	}

	return pulseBright
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}
