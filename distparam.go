package ember

import "math/rand/v2"

// DistParam is a Param whose four coefficients are each drawn once from a
// Dist at instantiation time. One draw per coefficient, not per frame: a
// particle's trajectory, once spawned, never re-rolls.
type DistParam struct {
	Value Dist
	Speed Dist
	Accel Dist
	Jerk  Dist
}

// FixedDistParam returns a stationary DistParam: only the value coefficient
// is randomized, the rest are fixed at zero.
func FixedDistParam(value Dist) DistParam {
	return DistParam{Value: value, Speed: ZeroDist(), Accel: ZeroDist(), Jerk: ZeroDist()}
}

// DistParamWithSpeed returns a DistParam with randomized value and rate.
func DistParamWithSpeed(value, speed Dist) DistParam {
	return DistParam{Value: value, Speed: speed, Accel: ZeroDist(), Jerk: ZeroDist()}
}

// DistParamWithAccel returns a DistParam with randomized value, rate, and
// acceleration.
func DistParamWithAccel(value, speed, accel Dist) DistParam {
	return DistParam{Value: value, Speed: speed, Accel: accel, Jerk: ZeroDist()}
}

// DistParamWithJerk returns a DistParam with all four coefficients randomized.
func DistParamWithJerk(value, speed, accel, jerk Dist) DistParam {
	return DistParam{Value: value, Speed: speed, Accel: accel, Jerk: jerk}
}

// Instantiate draws one concrete Param, sampling each coefficient exactly
// once. Not idempotent: two calls yield two independent Params. Callers
// needing a stable trajectory call it once per spawned entity and retain the
// result.
func (dp DistParam) Instantiate(rng *rand.Rand) Param {
	return Param{
		Value: dp.Value.Sample(rng),
		Speed: dp.Speed.Sample(rng),
		Accel: dp.Accel.Sample(rng),
		Jerk:  dp.Jerk.Sample(rng),
	}
}

// DistParam2D pairs two DistParams for coupled x/y control.
type DistParam2D struct {
	X, Y DistParam
	// shared marks the one-argument construction, where angular coefficients
	// must be drawn jointly across both axes.
	shared bool
}

// NewDistParam2D returns a DistParam2D using p for both axes. Coefficients
// are sampled independently per axis, except angular Dists, which are drawn
// once per coefficient with the X and Y components assigned coherently.
func NewDistParam2D(p DistParam) DistParam2D {
	return DistParam2D{X: p, Y: p, shared: true}
}

// NewDistParam2DXY returns a DistParam2D with independent per-axis params.
func NewDistParam2DXY(x, y DistParam) DistParam2D {
	return DistParam2D{X: x, Y: y}
}

// Instantiate2D draws one concrete Param per axis.
func (d DistParam2D) Instantiate2D(rng *rand.Rand) (Param, Param) {
	if !d.shared {
		return d.X.Instantiate(rng), d.Y.Instantiate(rng)
	}
	var x, y Param
	x.Value, y.Value = sampleJoint(d.X.Value, rng)
	x.Speed, y.Speed = sampleJoint(d.X.Speed, rng)
	x.Accel, y.Accel = sampleJoint(d.X.Accel, rng)
	x.Jerk, y.Jerk = sampleJoint(d.X.Jerk, rng)
	return x, y
}

// sampleJoint draws one coefficient for both axes of a shared param. Angular
// Dists contribute one joint (dx, dy) draw; scalar Dists are sampled
// independently per axis.
func sampleJoint(dist Dist, rng *rand.Rand) (float64, float64) {
	if dist.IsAngular() {
		return dist.Sample2D(rng)
	}
	return dist.Sample(rng), dist.Sample(rng)
}
