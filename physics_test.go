package kinetic

import (
	"math"
	"testing"
)

func TestJitterZeroSpeedStaysPut(t *testing.T) {
	p := NewPhysics(nil)
	pt := &Particle{X: 5, Y: 7, Speed: 0}
	p.TrackParticle(pt)

	for i := 0; i < 50; i++ {
		p.Update(0.016)
	}
	if pt.X != 5 || pt.Y != 7 {
		t.Errorf("zero-speed particle moved to (%v, %v)", pt.X, pt.Y)
	}
}

func TestJitterStepIsBounded(t *testing.T) {
	p := NewPhysics(nil)
	pt := &Particle{Speed: 2}
	p.TrackParticle(pt)

	const dt = 0.016
	bound := 0.5*pt.Speed*dt*100 + 1e-9
	for i := 0; i < 200; i++ {
		x, y := pt.X, pt.Y
		p.Update(dt)
		if dx := math.Abs(pt.X - x); dx > bound {
			t.Fatalf("x step %v exceeds bound %v", dx, bound)
		}
		if dy := math.Abs(pt.Y - y); dy > bound {
			t.Fatalf("y step %v exceeds bound %v", dy, bound)
		}
	}
}

func TestJitterActuallyWalks(t *testing.T) {
	p := NewPhysics(nil)
	pt := &Particle{Speed: 1}
	p.TrackParticle(pt)

	moved := false
	for i := 0; i < 100 && !moved; i++ {
		p.Update(0.016)
		moved = pt.X != 0 || pt.Y != 0
	}
	if !moved {
		t.Error("particle never moved in 100 updates")
	}
}

func TestParallaxTranslate(t *testing.T) {
	scroll := 0.0
	p := NewPhysics(func() float64 { return scroll })

	vert := &Parallax{Speed: 0.5, Offset: 10, Axis: AxisVertical}
	horiz := &Parallax{Speed: -2, Offset: 0, Axis: AxisHorizontal}
	p.TrackParallax(vert)
	p.TrackParallax(horiz)

	scroll = 100
	p.Update(0.016)
	if vert.Translate != 100*0.5+10 {
		t.Errorf("vertical translate = %v, want 60", vert.Translate)
	}
	if horiz.Translate != -200 {
		t.Errorf("horizontal translate = %v, want -200", horiz.Translate)
	}

	// Pure function of the current scroll position: no velocity persists.
	scroll = 0
	p.Update(0.016)
	if vert.Translate != 10 {
		t.Errorf("translate = %v, want offset 10 at scroll 0", vert.Translate)
	}
}

func TestUntrack(t *testing.T) {
	p := NewPhysics(nil)
	pt := &Particle{Speed: 1}
	l := &Parallax{Speed: 1}
	p.TrackParticle(pt)
	p.TrackParallax(l)

	p.UntrackParticle(pt)
	p.UntrackParallax(l)
	if p.ParticleCount() != 0 || p.ParallaxCount() != 0 {
		t.Errorf("counts = %d/%d, want 0/0", p.ParticleCount(), p.ParallaxCount())
	}

	// Untracking again is a no-op.
	p.UntrackParticle(pt)
	p.UntrackParallax(l)
}

func TestSchedulerRunsPhysicsAfterTweens(t *testing.T) {
	s := NewScheduler()
	scrollReads := 0
	p := NewPhysics(func() float64 { scrollReads++; return 0 })
	s.SetPhysics(p)

	s.Tick(0) // seed tick does not run physics
	if scrollReads != 0 {
		t.Errorf("physics ran on seed tick")
	}

	s.Tick(16)
	s.Tick(33)
	if scrollReads != 2 {
		t.Errorf("scroll read %d times, want once per advancing tick", scrollReads)
	}

	s.PauseAll()
	s.Tick(50)
	if scrollReads != 2 {
		t.Error("physics ran while paused")
	}
}
