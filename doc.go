// Package kinetic is a frame-based animation scheduling engine.
//
// Kinetic owns a single cooperative tick loop that advances a registry of
// independently parameterized tweens, runs per-frame observer callbacks, and
// drives lightweight positional physics (particle jitter and parallax
// offsets). One broken callback never stops the loop.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and ticks
// a [Scheduler] once per display refresh:
//
//	sched := kinetic.NewScheduler()
//	sched.Create("fade", kinetic.TweenConfig{
//		From: kinetic.Scalar(0), To: kinetic.Scalar(1), Duration: 1.5,
//		Easing: "easeInOutQuad",
//		OnUpdate: func(v kinetic.Value, eased float64, tw *kinetic.Tween) {
//			alpha = v.Float()
//		},
//	})
//	sched.Play("fade")
//	kinetic.Run(sched, kinetic.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// For full control (or for tests), drive the scheduler yourself by feeding
// [Scheduler.Tick] millisecond timestamps from any clock:
//
//	sched.Tick(0)
//	sched.Tick(16.7)
//
// # Tweens
//
// A [Tween] interpolates between two [Value] endpoints (scalar or
// fixed-arity vector) over a duration, reshaped by an easing curve. Yoyo
// tweens reverse direction at the terminal bound instead of finishing;
// repeating tweens restart for a configured number of extra cycles.
// Completed tweens stay registered and queryable via [Scheduler.Get] until
// [Scheduler.Clear].
//
// # Easing
//
// Named curves are resolved through the easing table ([EaseByName],
// [RegisterEase]); unknown names fall back to smooth ease-in-out rather than
// failing, so a typo in animation configuration never halts the loop. The
// full [gween] catalog can be adapted with [FromGween].
//
// # Time
//
// Each tick's delta is clamped to 100ms of simulated time, so a long stall
// (a backgrounded window, a debugger break) cannot fling every tween to its
// end state on the next frame. [Scheduler.SetTimeScale] slows or speeds the
// whole clock.
//
// # Declarative sheets
//
// Tween sets can be defined in YAML and applied with [Scheduler.ApplySheet];
// [SheetWatcher] reloads sheets on edit for live tuning.
//
// [gween]: https://github.com/tanema/gween
package kinetic
