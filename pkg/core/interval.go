package core

import "math"

// Interval is a closed range [Lo, Hi] of the real line (spec.md §3). The
// empty interval has Lo=+Inf, Hi=-Inf; the universe has the opposite.
type Interval struct {
	Lo, Hi float64
}

// NewInterval builds the interval [lo, hi].
func NewInterval(lo, hi float64) Interval {
	return Interval{Lo: lo, Hi: hi}
}

// EmptyInterval contains no values.
func EmptyInterval() Interval {
	return Interval{Lo: math.Inf(1), Hi: math.Inf(-1)}
}

// UniverseInterval contains every value.
func UniverseInterval() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// Size returns Hi - Lo.
func (iv Interval) Size() float64 {
	return iv.Hi - iv.Lo
}

// Contains is true for x ∈ [Lo, Hi].
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

// Surrounds is the strict variant: x ∈ (Lo, Hi).
func (iv Interval) Surrounds(x float64) bool {
	return iv.Lo < x && x < iv.Hi
}

// Clamp restricts x to the interval.
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Lo {
		return iv.Lo
	}
	if x > iv.Hi {
		return iv.Hi
	}
	return x
}

// Expand pads the interval symmetrically by delta/2 on each side.
func (iv Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Lo: iv.Lo - padding, Hi: iv.Hi + padding}
}

// Translate offsets the interval by a scalar.
func (iv Interval) Translate(offset float64) Interval {
	return Interval{Lo: iv.Lo + offset, Hi: iv.Hi + offset}
}

// IntervalUnion returns the smallest interval containing both a and b.
func IntervalUnion(a, b Interval) Interval {
	return Interval{Lo: math.Min(a.Lo, b.Lo), Hi: math.Max(a.Hi, b.Hi)}
}
