package ember

import "github.com/tanema/gween/ease"

// SizeDist is the per-particle width/height distribution pair.
type SizeDist struct {
	Width, Height Dist
}

// GeneratorModel is the aggregate configuration for one generator instance:
// the generator-level kinematics (position, rotation, color, spawn rate),
// layering flags, and the optional per-particle distributions. Built
// incrementally through Generator setters, then deep-copied into a frozen
// runtime snapshot at activation; mutating the source model never affects an
// already-running animation.
type GeneratorModel struct {
	Duration Duration

	// Generator world position. Each spawned particle's own position is
	// evaluated on top of this.
	PositionX, PositionY Param

	// Rotation applied to all particles, in radians. Nil means none.
	Rotation *Param

	// Color components, each nominally evaluating within [0, 1].
	Red, Green, Blue, Alpha Param

	// GenRate is the particle spawn rate in particles per second.
	GenRate Param

	// InitialOverflow is the fractional particle count pre-seeded at
	// activation, jump-starting the animation on its first frame.
	InitialOverflow float64

	IsBlocking        bool
	DrawAboveEntities bool
	MovesWithParent   bool

	// Optional per-particle randomized fields. Nil means unset.
	ParticlePositionDist        *DistParam2D
	ParticleDurationDist        *Dist
	ParticleSizeDist            *SizeDist
	ParticleFrameTimeOffsetDist *Dist

	// End-of-life alpha fade for finite generators. Zero seconds disables.
	FadeOutSeconds float64
	FadeOutEase    ease.TweenFunc
}

// NewGeneratorModel returns a model positioned at (x, y) with the defaults:
// white opaque color, one particle per second, drawn above entities, blocking
// only when the duration is finite.
func NewGeneratorModel(duration Duration, x, y float64) GeneratorModel {
	return GeneratorModel{
		Duration:          duration,
		PositionX:         FixedParam(x),
		PositionY:         FixedParam(y),
		Red:               FixedParam(1),
		Green:             FixedParam(1),
		Blue:              FixedParam(1),
		Alpha:             FixedParam(1),
		GenRate:           FixedParam(1),
		IsBlocking:        !duration.IsInfinite(),
		DrawAboveEntities: true,
	}
}

// clone returns a deep copy sharing no mutable state with the receiver.
func (m GeneratorModel) clone() GeneratorModel {
	c := m
	if m.Rotation != nil {
		r := *m.Rotation
		c.Rotation = &r
	}
	if m.ParticlePositionDist != nil {
		d := *m.ParticlePositionDist
		c.ParticlePositionDist = &d
	}
	if m.ParticleDurationDist != nil {
		d := *m.ParticleDurationDist
		c.ParticleDurationDist = &d
	}
	if m.ParticleSizeDist != nil {
		d := *m.ParticleSizeDist
		c.ParticleSizeDist = &d
	}
	if m.ParticleFrameTimeOffsetDist != nil {
		d := *m.ParticleFrameTimeOffsetDist
		c.ParticleFrameTimeOffsetDist = &d
	}
	return c
}
