package ember

import (
	"math"
	"testing"
)

func TestInstantiateAllFixed(t *testing.T) {
	dp := DistParamWithJerk(FixedDist(1), FixedDist(2), FixedDist(3), FixedDist(4))
	want := ParamWithJerk(1, 2, 3, 4)
	for i := 0; i < 5; i++ {
		if got := dp.Instantiate(nil); got != want {
			t.Fatalf("Instantiate() = %+v, want %+v", got, want)
		}
	}
}

func TestInstantiateNotIdempotent(t *testing.T) {
	rng := testRand(4)
	dp := FixedDistParam(UniformDist(0, 1))
	a := dp.Instantiate(rng)
	differs := false
	for i := 0; i < 20; i++ {
		if dp.Instantiate(rng) != a {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("20 instantiations identical with a uniform value dist")
	}
}

func TestInstantiateTrailingDefaults(t *testing.T) {
	rng := testRand(5)
	p := FixedDistParam(UniformDist(1, 2)).Instantiate(rng)
	if p.Speed != 0 || p.Accel != 0 || p.Jerk != 0 {
		t.Errorf("FixedDistParam instantiated nonzero higher coefficients: %+v", p)
	}
	q := DistParamWithSpeed(FixedDist(1), FixedDist(2)).Instantiate(rng)
	if q.Accel != 0 || q.Jerk != 0 {
		t.Errorf("DistParamWithSpeed instantiated nonzero accel/jerk: %+v", q)
	}
}

func TestDistParam2DSharedScalar(t *testing.T) {
	rng := testRand(6)
	d := NewDistParam2D(FixedDistParam(FixedDist(3)))
	x, y := d.Instantiate2D(rng)
	if x.Value != 3 || y.Value != 3 {
		t.Errorf("shared fixed instantiate = (%v, %v), want (3, 3)", x.Value, y.Value)
	}
}

func TestDistParam2DSharedAngularJointDraw(t *testing.T) {
	// With a shared angular value dist, one joint draw must feed both axes:
	// the materialized (x, y) always lies on the circle of the drawn
	// magnitude. Two independent draws would break that almost surely.
	rng := testRand(7)
	d := NewDistParam2D(FixedDistParam(AngularDist(0, 2*math.Pi, 2, 2)))
	for i := 0; i < 200; i++ {
		x, y := d.Instantiate2D(rng)
		mag := math.Sqrt(x.Value*x.Value + y.Value*y.Value)
		if math.Abs(mag-2) > 1e-9 {
			t.Fatalf("joint angular draw magnitude = %v, want 2", mag)
		}
	}
}

func TestDistParam2DSharedAngularSpeed(t *testing.T) {
	// Angular joint sampling applies per coefficient, not just the value.
	rng := testRand(8)
	d := NewDistParam2D(DistParamWithSpeed(FixedDist(0), AngularDist(0, 2*math.Pi, 5, 5)))
	x, y := d.Instantiate2D(rng)
	mag := math.Sqrt(x.Speed*x.Speed + y.Speed*y.Speed)
	if math.Abs(mag-5) > 1e-9 {
		t.Errorf("joint angular speed magnitude = %v, want 5", mag)
	}
}

func TestDistParam2DIndependentAxes(t *testing.T) {
	rng := testRand(9)
	d := NewDistParam2DXY(
		FixedDistParam(FixedDist(1)),
		FixedDistParam(FixedDist(2)),
	)
	x, y := d.Instantiate2D(rng)
	if x.Value != 1 || y.Value != 2 {
		t.Errorf("independent instantiate = (%v, %v), want (1, 2)", x.Value, y.Value)
	}
}
