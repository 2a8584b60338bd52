package kinetic

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EaseFunc maps normalized progress in [0, 1] to normalized output. Pure.
// Elastic and bounce curves overshoot the [0, 1] range transiently; that is
// intentional, consumers must tolerate it.
type EaseFunc func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// EaseInOutCubic is a steeper symmetric ease than EaseInOutQuad.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutElastic springs past the target and oscillates into place.
func EaseOutElastic(t float64) float64 {
	const c4 = 2 * math.Pi / 3
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*c4) + 1
}

// EaseOutBounce is the standard four-segment Penner bounce-out.
func EaseOutBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// EaseLaunch is an ease-out cubic: a hard start that coasts to rest.
func EaseLaunch(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseOrbit is a smooth symmetric ease, same shape as EaseInOutQuad.
func EaseOrbit(t float64) float64 {
	return EaseInOutQuad(t)
}

// DefaultEase is the curve substituted when an easing name is unknown.
var DefaultEase EaseFunc = EaseInOutQuad

// easeTable maps curve names to functions. Extended via RegisterEase.
var easeTable = map[string]EaseFunc{
	"linear":         Linear,
	"easeInOutQuad":  EaseInOutQuad,
	"easeInOutCubic": EaseInOutCubic,
	"easeOutElastic": EaseOutElastic,
	"easeOutBounce":  EaseOutBounce,
	"easeLaunch":     EaseLaunch,
	"easeOrbit":      EaseOrbit,
}

// RegisterEase adds or replaces a named curve in the easing table.
// Not safe to call concurrently with a running scheduler; register curves
// during setup.
func RegisterEase(name string, fn EaseFunc) {
	if name == "" || fn == nil {
		return
	}
	easeTable[name] = fn
}

// EaseByName looks up a named curve. The second result reports whether the
// name was known.
func EaseByName(name string) (EaseFunc, bool) {
	fn, ok := easeTable[name]
	return fn, ok
}

// resolveEase returns the named curve, or DefaultEase for unknown (or empty)
// names. Lookup failure is deliberately soft: a typo in animation
// configuration must never halt the loop.
func resolveEase(name string) EaseFunc {
	if fn, ok := easeTable[name]; ok {
		return fn
	}
	return DefaultEase
}

// FromGween adapts a gween easing function to an EaseFunc, making the full
// gween/ease catalog usable as tween curves:
//
//	kinetic.RegisterEase("outBack", kinetic.FromGween(ease.OutBack))
func FromGween(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}
