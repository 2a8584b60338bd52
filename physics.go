package kinetic

import "math/rand"

// Axis selects which transform axis a parallax translation applies to.
type Axis uint8

const (
	AxisVertical   Axis = iota // translate along Y (default)
	AxisHorizontal             // translate along X
)

// Particle is a tracked element driven by a cosmetic random walk. The
// physics updater nudges X and Y every tick by a centered random offset
// scaled by Speed; there is no collision and no bounds clamping. Positions
// are read and written in place, so the caller sees updates immediately.
type Particle struct {
	X, Y  float64
	Speed float64
}

// Parallax is a tracked element whose translation is a pure function of the
// current scroll position: Translate = scroll*Speed + Offset, applied along
// Axis. No velocity is persisted between ticks.
type Parallax struct {
	Speed  float64
	Offset float64
	Axis   Axis

	// Translate is the computed output, rewritten every update.
	Translate float64
}

// Physics runs the per-frame positional effects: particle jitter and
// parallax offsets. Attach to a Scheduler with SetPhysics; it then runs at
// the end of every unpaused tick. Element descriptors are owned by the
// caller and tracked by pointer.
type Physics struct {
	particles []*Particle
	layers    []*Parallax
	scroll    func() float64
}

// NewPhysics creates a physics updater reading scroll position from the
// given source. The source is externally owned and read once per tick; nil
// means a fixed scroll position of 0.
func NewPhysics(scroll func() float64) *Physics {
	if scroll == nil {
		scroll = func() float64 { return 0 }
	}
	return &Physics{scroll: scroll}
}

// TrackParticle adds a particle to the jitter walk.
func (p *Physics) TrackParticle(pt *Particle) {
	if pt == nil {
		return
	}
	p.particles = append(p.particles, pt)
}

// UntrackParticle removes a previously tracked particle.
func (p *Physics) UntrackParticle(pt *Particle) {
	for i, cur := range p.particles {
		if cur == pt {
			p.particles = append(p.particles[:i], p.particles[i+1:]...)
			return
		}
	}
}

// TrackParallax adds a parallax element.
func (p *Physics) TrackParallax(l *Parallax) {
	if l == nil {
		return
	}
	p.layers = append(p.layers, l)
}

// UntrackParallax removes a previously tracked parallax element.
func (p *Physics) UntrackParallax(l *Parallax) {
	for i, cur := range p.layers {
		if cur == l {
			p.layers = append(p.layers[:i], p.layers[i+1:]...)
			return
		}
	}
}

// ParticleCount returns the number of tracked particles.
func (p *Physics) ParticleCount() int { return len(p.particles) }

// ParallaxCount returns the number of tracked parallax elements.
func (p *Physics) ParallaxCount() int { return len(p.layers) }

// Update advances both effects by dt seconds. Stateless per tick apart from
// the particle positions themselves.
func (p *Physics) Update(dt float64) {
	for _, pt := range p.particles {
		amp := pt.Speed * dt * 100
		pt.X += (rand.Float64() - 0.5) * amp
		pt.Y += (rand.Float64() - 0.5) * amp
	}

	scroll := p.scroll()
	for _, l := range p.layers {
		l.Translate = scroll*l.Speed + l.Offset
	}
}
