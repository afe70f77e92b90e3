package ember

// Param is a scalar evolving over elapsed time t (seconds) as
//
//	value + speed·t + accel·t² + jerk·t³
//
// Params are immutable value types: evaluation never mutates state, and
// Offset returns a translated copy. NaN and overflow propagate per standard
// floating-point semantics; inputs are caller-validated.
type Param struct {
	Value float64
	Speed float64
	Accel float64
	Jerk  float64
}

// FixedParam returns a Param holding value constant over time.
func FixedParam(value float64) Param {
	return Param{Value: value}
}

// ParamWithSpeed returns a Param with a constant rate of change.
func ParamWithSpeed(value, speed float64) Param {
	return Param{Value: value, Speed: speed}
}

// ParamWithAccel returns a Param with constant acceleration.
func ParamWithAccel(value, speed, accel float64) Param {
	return Param{Value: value, Speed: speed, Accel: accel}
}

// ParamWithJerk returns a Param with all four coefficients specified.
func ParamWithJerk(value, speed, accel, jerk float64) Param {
	return Param{Value: value, Speed: speed, Accel: accel, Jerk: jerk}
}

// At evaluates the Param at elapsed time t seconds.
func (p Param) At(t float64) float64 {
	return p.Value + p.Speed*t + p.Accel*t*t + p.Jerk*t*t*t
}

// Offset returns a copy translated by delta. Only the constant term changes;
// time evolution is unaffected. Used to place a generator's local-frame
// position into world coordinates.
func (p Param) Offset(delta float64) Param {
	p.Value += delta
	return p
}
