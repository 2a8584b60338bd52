package kinetic

import (
	"fmt"
	"os"
	"time"
)

// Callback panic reports are always on: the loop survives a broken callback,
// but silently eating the failure would make the animation impossible to
// debug. Per-tick timing stats are gated behind Scheduler.SetDebug.

// recoverHook is deferred around tween hook invocations (onStart, onUpdate,
// onComplete). Must be the deferred function itself so recover applies.
func recoverHook(key, hook string) {
	if r := recover(); r != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[kinetic] recovered panic in tween %q %s: %v\n", key, hook, r)
	}
}

// recoverFrame is deferred around per-frame callback invocations. On panic
// it leaves *ok false, which deregisters the callback.
func recoverFrame(ok *bool) {
	if r := recover(); r != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[kinetic] recovered panic in frame callback (deregistered): %v\n", r)
		*ok = false
	}
}

// debugTick prints per-tick stats to stderr. Only called when debug is set.
func debugTick(elapsed time.Duration, tweens, callbacks int, dt float64) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[kinetic] tick: %v | tweens: %d | callbacks: %d | dt: %.4fs\n",
		elapsed, tweens, callbacks, dt)
}
