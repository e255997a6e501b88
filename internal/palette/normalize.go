// Package palette turns category hours into colors: a per-category linear
// normalizer followed by a sequential color scale.
package palette

// Normalizer scales one category's hours to [0,1] against that category's
// year-wide maximum.
type Normalizer struct {
	max float64
}

// NewNormalizer builds a normalizer whose upper bound is the observed maximum,
// floored at 1 so an empty year never divides by zero.
func NewNormalizer(observedMax float64) Normalizer {
	if observedMax < 1 {
		observedMax = 1
	}
	return Normalizer{max: observedMax}
}

// Max is the effective upper bound used for scaling.
func (n Normalizer) Max() float64 {
	if n.max == 0 {
		return 1
	}
	return n.max
}

// Normalize returns hours/Max clamped to [0,1].
func (n Normalizer) Normalize(hours float64) float64 {
	v := hours / n.Max()
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
