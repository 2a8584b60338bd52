package kinetic

import "math/rand"

// Value is an animation endpoint: either a scalar or a fixed-arity vector.
// The zero Value is the scalar 0. Endpoints of one tween must share a shape;
// mismatched arities are rejected at registration.
type Value struct {
	vec    []float64 // nil for scalars
	scalar float64
}

// Scalar returns a scalar Value.
func Scalar(v float64) Value {
	return Value{scalar: v}
}

// Vector returns a vector Value with the given components. A copy is taken,
// so the caller's slice may be reused. Vector() with no components is the
// scalar 0; Vector with one component is a 1-vector, not a scalar.
func Vector(components ...float64) Value {
	if components == nil {
		return Value{}
	}
	vec := make([]float64, len(components))
	copy(vec, components)
	return Value{vec: vec}
}

// IsVector reports whether v is a vector.
func (v Value) IsVector() bool {
	return v.vec != nil
}

// Len returns the number of components: 1 for scalars, the arity for vectors.
func (v Value) Len() int {
	if v.vec == nil {
		return 1
	}
	return len(v.vec)
}

// Float returns the scalar value. For vectors it returns the first component
// (or 0 for an empty vector).
func (v Value) Float() float64 {
	if v.vec == nil {
		return v.scalar
	}
	if len(v.vec) == 0 {
		return 0
	}
	return v.vec[0]
}

// At returns component i. For scalars only At(0) is valid.
func (v Value) At(i int) float64 {
	if v.vec == nil {
		if i != 0 {
			panic("kinetic: At out of range on scalar Value")
		}
		return v.scalar
	}
	return v.vec[i]
}

// Components returns the backing component slice for vectors, or nil for
// scalars. The returned slice MUST NOT be mutated or retained across ticks;
// the engine rewrites it in place every tick.
func (v Value) Components() []float64 {
	return v.vec
}

// sameShape reports whether two values can be interpolated together.
func sameShape(a, b Value) bool {
	if a.IsVector() != b.IsVector() {
		return false
	}
	return a.Len() == b.Len()
}

// Range is a general-purpose min/max range. Used by the examples for
// randomized tween targets and jitter speeds.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 clamps t to [0, 1].
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
