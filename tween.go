package kinetic

// UpdateFunc observes a tween every tick it advances. value shares its
// backing storage with the tween (see Value.Components); eased is the eased
// progress, which may transiently leave [0, 1] for overshooting curves.
type UpdateFunc func(value Value, eased float64, tw *Tween)

// TweenConfig describes a tween at registration time.
type TweenConfig struct {
	// From and To are the endpoints. Both must have the same shape.
	From, To Value
	// Duration is the cycle length in seconds. Must be > 0.
	Duration float64
	// Easing names a curve in the easing table. Unknown or empty names fall
	// back to DefaultEase. Ignored when EasingFunc is set.
	Easing string
	// EasingFunc, when non-nil, is used directly instead of a named lookup.
	EasingFunc EaseFunc
	// Yoyo makes the tween reverse direction at the terminal bound instead
	// of completing. A yoyo tween never finishes on its own.
	Yoyo bool
	// Repeat is the number of additional full cycles after the first.
	// Negative values are treated as 0. Ignored while Yoyo is set.
	Repeat int
	// OnStart fires once per Play call that actually starts the tween.
	OnStart func()
	// OnUpdate fires every tick the tween advances.
	OnUpdate UpdateFunc
	// OnComplete fires exactly once, when the tween completes.
	OnComplete func()
}

// Tween is a single timed interpolation owned by a Scheduler. All mutation
// happens through the scheduler; accessors are safe to call between ticks.
type Tween struct {
	key      string
	from, to Value
	current  Value // same shape as from/to; vector backing is preallocated
	duration float64
	easing   EaseFunc

	currentTime float64 // elapsed seconds; decreases during reverse phases
	progress    float64 // clamped to [0, 1]
	eased       float64

	reverse     bool
	yoyo        bool
	repeat      int
	repeatCount int

	playing  bool
	complete bool

	onStart    func()
	onUpdate   UpdateFunc
	onComplete func()
}

// newTween builds an inert tween. Config validation happens in
// Scheduler.Create before this is called.
func newTween(key string, cfg TweenConfig) *Tween {
	easing := cfg.EasingFunc
	if easing == nil {
		easing = resolveEase(cfg.Easing)
	}
	repeat := cfg.Repeat
	if repeat < 0 {
		repeat = 0
	}

	t := &Tween{
		key:        key,
		from:       cfg.From,
		to:         cfg.To,
		duration:   cfg.Duration,
		easing:     easing,
		yoyo:       cfg.Yoyo,
		repeat:     repeat,
		onStart:    cfg.OnStart,
		onUpdate:   cfg.OnUpdate,
		onComplete: cfg.OnComplete,
	}

	// Preallocate the current-value backing so steady-state ticks never
	// allocate, and seed it with the starting endpoint.
	if cfg.From.IsVector() {
		t.current = Value{vec: make([]float64, cfg.From.Len())}
		copy(t.current.vec, cfg.From.vec)
	} else {
		t.current = cfg.From
	}
	return t
}

// Key returns the registry key.
func (t *Tween) Key() string { return t.key }

// Duration returns the cycle length in seconds.
func (t *Tween) Duration() float64 { return t.duration }

// CurrentTime returns the elapsed seconds within the current cycle.
func (t *Tween) CurrentTime() float64 { return t.currentTime }

// Progress returns normalized progress, always in [0, 1].
func (t *Tween) Progress() float64 { return t.progress }

// EasedProgress returns the eased progress from the last advance.
func (t *Tween) EasedProgress() float64 { return t.eased }

// Value returns the interpolated value from the last advance. For vectors the
// backing slice is rewritten in place each tick; see Value.Components.
func (t *Tween) Value() Value { return t.current }

// IsPlaying reports whether the tween advances on the next tick.
func (t *Tween) IsPlaying() bool { return t.playing }

// IsComplete reports whether the tween has completed. A tween is never both
// playing and complete.
func (t *Tween) IsComplete() bool { return t.complete }

// Reverse reports the current playback direction (true while running
// backwards during a yoyo phase).
func (t *Tween) Reverse() bool { return t.reverse }

// RepeatCount returns the number of full cycles completed so far, never
// exceeding the configured repeat count.
func (t *Tween) RepeatCount() int { return t.repeatCount }

// advance moves the tween by dt seconds of simulated time and runs its
// terminal transition. Called only from Scheduler.Tick while playing.
func (t *Tween) advance(dt float64) {
	if t.reverse {
		t.currentTime -= dt
	} else {
		t.currentTime += dt
	}
	t.progress = clamp01(t.currentTime / t.duration)
	t.eased = t.easing(t.progress)
	t.interpolate()
	t.fireUpdate()

	atEnd := (!t.reverse && t.progress >= 1) || (t.reverse && t.progress <= 0)
	if !atEnd {
		return
	}

	switch {
	case t.yoyo:
		// Flip direction and restart the clock from the new phase's origin.
		t.reverse = !t.reverse
		if t.reverse {
			t.currentTime = t.duration
		} else {
			t.currentTime = 0
		}
	case t.repeatCount < t.repeat:
		t.repeatCount++
		t.currentTime = 0
		t.progress = 0
	default:
		t.complete = true
		t.playing = false
		t.fireComplete()
	}
}

// interpolate recomputes the current value from the eased progress,
// element-wise for vectors. Writes into the preallocated backing.
func (t *Tween) interpolate() {
	if t.current.vec == nil {
		t.current.scalar = lerp(t.from.scalar, t.to.scalar, t.eased)
		return
	}
	for i := range t.current.vec {
		t.current.vec[i] = lerp(t.from.vec[i], t.to.vec[i], t.eased)
	}
}

// Hook invocations are guarded: a panicking user callback is logged and
// contained so the rest of the tick still runs. Unlike per-frame callbacks,
// a panicking tween hook does not deregister the tween.

func (t *Tween) fireStart() {
	if t.onStart == nil {
		return
	}
	defer recoverHook(t.key, "onStart")
	t.onStart()
}

func (t *Tween) fireUpdate() {
	if t.onUpdate == nil {
		return
	}
	defer recoverHook(t.key, "onUpdate")
	t.onUpdate(t.current, t.eased, t)
}

func (t *Tween) fireComplete() {
	if t.onComplete == nil {
		return
	}
	defer recoverHook(t.key, "onComplete")
	t.onComplete()
}
