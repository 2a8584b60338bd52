package kinetic

import (
	"errors"
	"fmt"
	"time"
)

// defaultMaxDelta caps a single tick's simulated time step, in seconds. A
// long real stall (backgrounded window, debugger break) otherwise advances
// every tween by the full gap on the next tick.
const defaultMaxDelta = 0.1

// Registration errors. Wrapped by Scheduler.Create; test with errors.Is.
var (
	// ErrDuplicateKey reports a Create with a key that is already registered.
	ErrDuplicateKey = errors.New("duplicate tween key")
	// ErrShapeMismatch reports endpoints with different arities.
	ErrShapeMismatch = errors.New("from/to shape mismatch")
	// ErrDestroyed reports an operation on a destroyed scheduler.
	ErrDestroyed = errors.New("scheduler destroyed")
)

// FrameCallback observes every unpaused tick, independent of any tween.
// deltaTime is the clamped, scaled step in seconds; timestamp is the raw
// tick timestamp in milliseconds.
type FrameCallback func(deltaTime, timestamp float64)

// Handle identifies a registered FrameCallback for removal.
type Handle uint64

type frameCallback struct {
	id Handle
	fn FrameCallback // nil marks a slot pending compaction
}

// Scheduler owns the tween registry, the per-frame callback list, and the
// frame clock. Create one per page/session scope with NewScheduler; there is
// no package-level singleton.
//
// All methods assume a single execution context: ticks and public calls must
// not race. The cooperative model needs no locks.
type Scheduler struct {
	tweens map[string]*Tween
	order  []*Tween // insertion order; tween advancement is deterministic

	callbacks  []frameCallback
	nextHandle Handle

	physics *Physics

	// Frame clock.
	lastTimestamp float64
	seeded        bool
	deltaTime     float64
	timeScale     float64
	maxDelta      float64
	paused        bool
	destroyed     bool

	debug bool
}

// NewScheduler creates an empty scheduler with timeScale 1.
func NewScheduler() *Scheduler {
	return &Scheduler{
		tweens:    make(map[string]*Tween),
		timeScale: 1,
		maxDelta:  defaultMaxDelta,
	}
}

// Create registers a new inert tween under key and returns the key. The
// tween does not advance until Play. Duplicate keys are rejected rather than
// silently overwritten, so an in-flight tween can never be discarded by a
// colliding registration.
func (s *Scheduler) Create(key string, cfg TweenConfig) (string, error) {
	if s.destroyed {
		return "", fmt.Errorf("kinetic: create %q: %w", key, ErrDestroyed)
	}
	if key == "" {
		return "", fmt.Errorf("kinetic: create: empty key")
	}
	if _, ok := s.tweens[key]; ok {
		return "", fmt.Errorf("kinetic: create %q: %w", key, ErrDuplicateKey)
	}
	if cfg.Duration <= 0 {
		return "", fmt.Errorf("kinetic: create %q: duration must be > 0, got %v", key, cfg.Duration)
	}
	if !sameShape(cfg.From, cfg.To) {
		return "", fmt.Errorf("kinetic: create %q: %w (from %d, to %d)",
			key, ErrShapeMismatch, cfg.From.Len(), cfg.To.Len())
	}

	tw := newTween(key, cfg)
	s.tweens[key] = tw
	s.order = append(s.order, tw)
	return key, nil
}

// Play starts the tween registered under key. Absent keys are a no-op.
// Playing an already-playing tween is a no-op: currentTime is not reset and
// onStart does not refire. Playing a completed tween resumes it at its
// terminal bound without resetting.
func (s *Scheduler) Play(key string) {
	tw, ok := s.tweens[key]
	if !ok {
		return
	}
	if tw.playing {
		return
	}
	tw.playing = true
	tw.complete = false
	tw.fireStart()
}

// Pause stops a single tween from advancing. Absent keys are a no-op.
// State is preserved; Play resumes from the same position.
func (s *Scheduler) Pause(key string) {
	tw, ok := s.tweens[key]
	if !ok || tw.complete {
		return
	}
	tw.playing = false
}

// Get returns the tween registered under key. Completed tweens remain
// registered and queryable until Clear.
func (s *Scheduler) Get(key string) (*Tween, bool) {
	tw, ok := s.tweens[key]
	return tw, ok
}

// Len returns the number of registered tweens, completed ones included.
func (s *Scheduler) Len() int {
	return len(s.order)
}

// Clear removes every tween, releasing their callback references.
// Per-frame callbacks and physics tracking are unaffected.
func (s *Scheduler) Clear() {
	s.tweens = make(map[string]*Tween)
	s.order = nil
}

// AddCallback registers a per-frame observer and returns its removal handle.
// Callbacks run after tween advancement, in registration order. A callback
// that panics is logged and permanently deregistered.
func (s *Scheduler) AddCallback(fn FrameCallback) Handle {
	s.nextHandle++
	h := s.nextHandle
	if fn != nil && !s.destroyed {
		s.callbacks = append(s.callbacks, frameCallback{id: h, fn: fn})
	}
	return h
}

// RemoveCallback deregisters a per-frame observer. Unknown handles are a
// no-op. Safe to call from within a callback; the removal takes effect at
// the end of the current tick.
func (s *Scheduler) RemoveCallback(h Handle) {
	for i := range s.callbacks {
		if s.callbacks[i].id == h {
			s.callbacks[i].fn = nil
			return
		}
	}
}

// SetPhysics attaches a physics updater, run at the end of every unpaused
// tick. Pass nil to detach.
func (s *Scheduler) SetPhysics(p *Physics) {
	if s.destroyed {
		return
	}
	s.physics = p
}

// Physics returns the attached physics updater, or nil.
func (s *Scheduler) Physics() *Physics {
	return s.physics
}

// SetTimeScale sets the simulated-time multiplier applied after delta
// clamping. 1 is real time; 0 freezes tween time without pausing callbacks.
func (s *Scheduler) SetTimeScale(scale float64) {
	s.timeScale = scale
}

// TimeScale returns the current simulated-time multiplier.
func (s *Scheduler) TimeScale() float64 {
	return s.timeScale
}

// SetMaxDelta sets the per-tick cap on simulated time, in seconds.
// Non-positive values restore the default of 0.1s. Raise it only when a
// driver guarantees bounded frame gaps; the cap is what keeps a stalled
// frame from flinging every tween to its end state.
func (s *Scheduler) SetMaxDelta(seconds float64) {
	if seconds <= 0 {
		seconds = defaultMaxDelta
	}
	s.maxDelta = seconds
}

// PauseAll suspends tween advancement, per-frame callbacks, and physics.
// Tween and physics state is preserved for ResumeAll. Ticks may keep
// arriving while paused; they only refresh the clock.
func (s *Scheduler) PauseAll() {
	s.paused = true
}

// ResumeAll resumes ticking. The frame clock is re-seeded, so the first tick
// after resume only establishes a new baseline: a driver that stopped
// ticking during the pause cannot produce one inflated delta on resume.
func (s *Scheduler) ResumeAll() {
	s.paused = false
	s.seeded = false
}

// IsPaused reports whether the scheduler is paused.
func (s *Scheduler) IsPaused() bool {
	return s.paused
}

// Destroy tears the scheduler down: the registry, callback list, and physics
// reference are dropped and every later Tick is a no-op. Terminal.
func (s *Scheduler) Destroy() {
	s.destroyed = true
	s.tweens = make(map[string]*Tween)
	s.order = nil
	s.callbacks = nil
	s.physics = nil
}

// IsDestroyed reports whether Destroy has been called.
func (s *Scheduler) IsDestroyed() bool {
	return s.destroyed
}

// DeltaTime returns the clamped, scaled step of the last tick in seconds.
func (s *Scheduler) DeltaTime() float64 {
	return s.deltaTime
}

// SetDebug enables per-tick timing stats on stderr.
func (s *Scheduler) SetDebug(enabled bool) {
	s.debug = enabled
}

// Tick advances the engine by one frame. timestamp is in milliseconds from
// any monotonic origin; Run feeds it from the process clock, tests feed it
// by hand.
//
// The first tick after creation or ResumeAll only seeds the clock. The delta
// between consecutive ticks is clamped to the max delta (see SetMaxDelta)
// and then scaled by timeScale. While paused, ticks refresh the clock but
// advance nothing.
func (s *Scheduler) Tick(timestamp float64) {
	if s.destroyed {
		return
	}
	if !s.seeded {
		s.seeded = true
		s.lastTimestamp = timestamp
		return
	}

	raw := (timestamp - s.lastTimestamp) / 1000
	if raw < 0 {
		// Non-monotonic input; treat as a zero-length frame.
		raw = 0
	}
	if raw > s.maxDelta {
		raw = s.maxDelta
	}
	s.deltaTime = raw * s.timeScale
	s.lastTimestamp = timestamp

	if s.paused {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	// A hook or callback may call Destroy from within the tick; each phase
	// bails out as soon as that happens.
	for _, tw := range s.order {
		if s.destroyed {
			return
		}
		if tw.playing && !tw.complete {
			tw.advance(s.deltaTime)
		}
	}

	s.runCallbacks(s.deltaTime, timestamp)
	if s.destroyed {
		return
	}

	if s.physics != nil {
		s.physics.Update(s.deltaTime)
	}

	if s.debug {
		debugTick(time.Since(t0), len(s.order), len(s.callbacks), s.deltaTime)
	}
}

// runCallbacks invokes every live per-frame callback, dropping any that
// panic, then compacts the list in place. Callbacks added mid-tick start on
// the next tick. Iteration works on a snapshot so a callback calling
// Destroy (which nils the list) cannot derail the loop.
func (s *Scheduler) runCallbacks(dt, timestamp float64) {
	cbs := s.callbacks
	for i := range cbs {
		if s.destroyed {
			return
		}
		fn := cbs[i].fn
		if fn == nil {
			continue
		}
		if !invokeFrame(fn, dt, timestamp) {
			cbs[i].fn = nil
		}
	}
	if s.destroyed {
		return
	}

	live := s.callbacks[:0]
	for _, cb := range s.callbacks {
		if cb.fn != nil {
			live = append(live, cb)
		}
	}
	s.callbacks = live
}

// invokeFrame runs one per-frame callback, reporting false if it panicked.
func invokeFrame(fn FrameCallback, dt, timestamp float64) (ok bool) {
	defer recoverFrame(&ok)
	fn(dt, timestamp)
	return true
}
