package ember

import (
	"math"
	"math/rand/v2"
)

type distKind uint8

const (
	distFixed distKind = iota
	distUniform
	distAngular
)

// Dist is a sampling primitive producing a scalar (fixed, uniform) or 2D
// (angular) value on demand. Value type; copying a Dist is free and two
// copies sample independently from the same underlying shape.
type Dist struct {
	kind distKind
	// min/max hold the value range for fixed (min only) and uniform kinds,
	// and the angle range in radians for the angular kind.
	min, max float64
	// magnitude range, angular kind only
	minMag, maxMag float64
}

// ZeroDist returns a Dist with a fixed value of zero.
func ZeroDist() Dist {
	return Dist{kind: distFixed}
}

// FixedDist returns a Dist which always yields value.
func FixedDist(value float64) Dist {
	return Dist{kind: distFixed, min: value}
}

// UniformDist returns a Dist yielding values uniformly distributed over
// [min, max]. The caller is responsible for min <= max.
func UniformDist(min, max float64) Dist {
	return Dist{kind: distUniform, min: min, max: max}
}

// AngularDist returns a two-component Dist yielding a vector with an angle
// drawn uniformly from [minAngle, maxAngle] (radians) and a magnitude drawn
// uniformly from [minMag, maxMag]. Only meaningful where a 2D consumer is
// expected, such as the particle position distribution.
func AngularDist(minAngle, maxAngle, minMag, maxMag float64) Dist {
	return Dist{kind: distAngular, min: minAngle, max: maxAngle, minMag: minMag, maxMag: maxMag}
}

// IsAngular reports whether the Dist yields two components per draw.
func (d Dist) IsAngular() bool {
	return d.kind == distAngular
}

// Sample draws one scalar value. For an angular Dist this returns the X
// component of a single 2D draw; use Sample2D where both components matter.
// Each call is independent of prior calls. A nil rng uses the package source.
func (d Dist) Sample(rng *rand.Rand) float64 {
	switch d.kind {
	case distFixed:
		return d.min
	case distUniform:
		return uniform(source(rng), d.min, d.max)
	default:
		x, _ := d.Sample2D(rng)
		return x
	}
}

// Sample2D draws one 2D value. Fixed and uniform Dists yield their scalar in
// both components. An angular Dist draws an angle and a magnitude
// independently and returns (mag·cos(angle), mag·sin(angle)).
func (d Dist) Sample2D(rng *rand.Rand) (float64, float64) {
	switch d.kind {
	case distAngular:
		r := source(rng)
		angle := uniform(r, d.min, d.max)
		mag := uniform(r, d.minMag, d.maxMag)
		return mag * math.Cos(angle), mag * math.Sin(angle)
	default:
		v := d.Sample(rng)
		return v, v
	}
}

// uniform returns a value uniformly distributed over [min, max].
// min == max returns min exactly.
func uniform(rng *rand.Rand, min, max float64) float64 {
	if min == max {
		return min
	}
	return min + rng.Float64()*(max-min)
}
