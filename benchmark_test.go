package kinetic

import (
	"fmt"
	"testing"
)

// setupBenchScheduler creates a scheduler with n playing yoyo tweens so a
// tick always has work to do. Durations are staggered so terminal
// transitions happen throughout the run, not in lockstep.
func setupBenchScheduler(n int) *Scheduler {
	s := NewScheduler()
	var sink float64
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("tw%d", i)
		_, _ = s.Create(key, TweenConfig{
			From: Scalar(0), To: Scalar(1),
			Duration:   0.5 + float64(i%7)*0.13,
			EasingFunc: EaseInOutQuad,
			Yoyo:       true,
			OnUpdate:   func(v Value, eased float64, tw *Tween) { sink = v.Float() },
		})
		s.Play(key)
	}
	_ = sink
	return s
}

func BenchmarkTick_1000Tweens(b *testing.B) {
	s := setupBenchScheduler(1000)
	ts := 0.0
	s.Tick(ts) // warm up: seed the clock

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ts += 16.7
		s.Tick(ts)
	}
}

func BenchmarkTick_1000VectorTweens(b *testing.B) {
	s := NewScheduler()
	for i := 0; i < 1000; i++ {
		key := fmt.Sprintf("tw%d", i)
		_, _ = s.Create(key, TweenConfig{
			From: Vector(0, 0, 0, 0), To: Vector(1, 2, 3, 4),
			Duration:   0.5 + float64(i%7)*0.13,
			EasingFunc: EaseOutElastic,
			Yoyo:       true,
		})
		s.Play(key)
	}
	ts := 0.0
	s.Tick(ts)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ts += 16.7
		s.Tick(ts)
	}
}

func BenchmarkPhysics_1000Particles(b *testing.B) {
	p := NewPhysics(nil)
	for i := 0; i < 1000; i++ {
		p.TrackParticle(&Particle{Speed: 0.1})
	}
	for i := 0; i < 20; i++ {
		p.TrackParallax(&Parallax{Speed: float64(i) * 0.05})
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Update(0.0167)
	}
}

func BenchmarkEaseOutBounce(b *testing.B) {
	t := 0.0
	var sink float64
	for i := 0; i < b.N; i++ {
		t += 0.001
		if t > 1 {
			t = 0
		}
		sink = EaseOutBounce(t)
	}
	_ = sink
}
