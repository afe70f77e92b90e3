package ember

import "testing"

func TestNewGeneratorModelDefaults(t *testing.T) {
	m := NewGeneratorModel(For(2), 10, 20)

	if m.PositionX.At(5) != 10 || m.PositionY.At(5) != 20 {
		t.Errorf("position = (%v, %v), want fixed (10, 20)",
			m.PositionX.At(5), m.PositionY.At(5))
	}
	if m.Alpha.At(3) != 1 {
		t.Errorf("default alpha At(3) = %v, want 1", m.Alpha.At(3))
	}
	if m.Red.At(0) != 1 || m.Green.At(0) != 1 || m.Blue.At(0) != 1 {
		t.Error("default color is not white")
	}
	if m.GenRate.At(0) != 1 {
		t.Errorf("default gen rate = %v, want 1", m.GenRate.At(0))
	}
	if m.Rotation != nil {
		t.Error("default rotation should be unset")
	}
	if !m.DrawAboveEntities {
		t.Error("default DrawAboveEntities = false, want true")
	}
	if m.InitialOverflow != 0 {
		t.Errorf("default InitialOverflow = %v, want 0", m.InitialOverflow)
	}
}

func TestModelBlockingDefault(t *testing.T) {
	if m := NewGeneratorModel(For(1), 0, 0); !m.IsBlocking {
		t.Error("finite-duration model should default to blocking")
	}
	if m := NewGeneratorModel(Forever(), 0, 0); m.IsBlocking {
		t.Error("infinite-duration model should default to non-blocking")
	}
}

func TestModelCloneIsDeep(t *testing.T) {
	m := NewGeneratorModel(For(1), 0, 0)
	rot := FixedParam(3)
	m.Rotation = &rot
	pos := NewDistParam2D(FixedDistParam(FixedDist(1)))
	m.ParticlePositionDist = &pos
	dur := FixedDist(2)
	m.ParticleDurationDist = &dur
	m.ParticleSizeDist = &SizeDist{Width: FixedDist(1), Height: FixedDist(1)}
	off := FixedDist(0.5)
	m.ParticleFrameTimeOffsetDist = &off

	c := m.clone()

	*m.Rotation = FixedParam(99)
	*m.ParticleDurationDist = FixedDist(99)
	m.ParticleSizeDist.Width = FixedDist(99)
	*m.ParticleFrameTimeOffsetDist = FixedDist(99)
	m.ParticlePositionDist.X = FixedDistParam(FixedDist(99))

	if c.Rotation.At(0) != 3 {
		t.Errorf("clone rotation = %v, want 3 after mutating source", c.Rotation.At(0))
	}
	if c.ParticleDurationDist.Sample(nil) != 2 {
		t.Error("clone particle duration dist shares storage with source")
	}
	if c.ParticleSizeDist.Width.Sample(nil) != 1 {
		t.Error("clone particle size dist shares storage with source")
	}
	if c.ParticleFrameTimeOffsetDist.Sample(nil) != 0.5 {
		t.Error("clone frame time offset dist shares storage with source")
	}
	if c.ParticlePositionDist.X.Value.Sample(nil) != 1 {
		t.Error("clone particle position dist shares storage with source")
	}
}
