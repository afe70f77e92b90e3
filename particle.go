package ember

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// particle holds one spawned particle's frozen trajectory. Unexported;
// managed by ParticleGenerator.
type particle struct {
	posX, posY  Param   // local position, materialized once at spawn
	birth       float64 // generator elapsed time at spawn
	life        float64 // lifetime in seconds, +Inf when unset
	width       float64
	height      float64
	frameOffset float64 // frame time offset in seconds
}

// ParticleState is the evaluated visual state of one live particle,
// world-positioned and ready for a renderer to consume.
type ParticleState struct {
	X, Y          float64
	Width, Height float64
	// FrameTime is the particle's age plus its frame time offset, the input
	// for frame selection on timed images.
	FrameTime float64
}

// GeneratorState is the evaluated generator-level state at the current
// elapsed time.
type GeneratorState struct {
	X, Y        float64
	Rotation    float64
	HasRotation bool
	Color       Color
}

// ParticleGenerator is a frozen runtime animation instance. It owns a deep
// copy of its configuration, so later mutation of the source Generator never
// affects it. The driver advances it with Update and reads State and
// Particles each frame; all evaluation is a pure function of elapsed time
// apart from the entropy drawn at spawn.
type ParticleGenerator struct {
	model GeneratorModel
	owner Owner
	image *ebiten.Image
	rng   *rand.Rand

	elapsed   float64
	baseX     float64 // owner center at activation, for parent following
	baseY     float64
	particles []particle
	alive     int
	genAccum  float64 // fractional spawn credit, seeded with InitialOverflow

	callbacks       []timedCallback
	completion      Callback
	completionFired bool
	done            bool
}

// timedCallback is a scheduled callback in the driver's native time unit.
type timedCallback struct {
	millis int64
	fn     Callback
	fired  bool
}

func newParticleGenerator(owner Owner, image *ebiten.Image, model GeneratorModel, rng *rand.Rand) *ParticleGenerator {
	p := &ParticleGenerator{
		model:    model,
		owner:    owner,
		image:    image,
		rng:      source(rng),
		genAccum: model.InitialOverflow,
	}
	if owner != nil {
		c := owner.Bounds().Center()
		p.baseX, p.baseY = c.X, c.Y
	}
	return p
}

func (p *ParticleGenerator) addCallback(fn Callback, millis int64) {
	p.callbacks = append(p.callbacks, timedCallback{millis: millis, fn: fn})
}

// Update advances the animation by dt seconds: fires due scheduled callbacks,
// retires expired particles, spawns new ones according to the generation
// rate, and completes the generator once its duration elapses. No-op once
// done.
func (p *ParticleGenerator) Update(dt float64) {
	if p.done {
		return
	}
	p.elapsed += dt

	p.fireDueCallbacks()

	// Retire expired particles, swap-remove.
	i := 0
	for i < p.alive {
		pt := &p.particles[i]
		if p.elapsed-pt.birth >= pt.life {
			p.alive--
			p.particles[i] = p.particles[p.alive]
			continue
		}
		i++
	}

	if p.elapsed >= p.model.Duration.Seconds() {
		p.finish()
		return
	}

	rate := p.model.GenRate.At(p.elapsed)
	if rate < 0 {
		rate = 0
	}
	p.genAccum += rate * dt
	for p.genAccum >= 1 {
		p.genAccum--
		p.spawnParticle()
	}
}

func (p *ParticleGenerator) fireDueCallbacks() {
	ms := int64(p.elapsed * 1000)
	for i := range p.callbacks {
		cb := &p.callbacks[i]
		if !cb.fired && cb.millis <= ms {
			cb.fired = true
			cb.fn()
		}
	}
}

// spawnParticle materializes one particle, sampling the per-particle
// distributions exactly once each in a fixed order: position, duration,
// size, frame time offset. Given a seeded source, spawning is reproducible.
func (p *ParticleGenerator) spawnParticle() {
	pt := particle{
		birth:  p.elapsed,
		life:   math.Inf(1),
		width:  1,
		height: 1,
	}
	if d := p.model.ParticlePositionDist; d != nil {
		pt.posX, pt.posY = d.Instantiate2D(p.rng)
	}
	if d := p.model.ParticleDurationDist; d != nil {
		pt.life = d.Sample(p.rng)
	}
	if d := p.model.ParticleSizeDist; d != nil {
		pt.width = d.Width.Sample(p.rng)
		pt.height = d.Height.Sample(p.rng)
	}
	if d := p.model.ParticleFrameTimeOffsetDist; d != nil {
		pt.frameOffset = d.Sample(p.rng)
	}

	if p.alive < len(p.particles) {
		p.particles[p.alive] = pt
	} else {
		p.particles = append(p.particles, pt)
	}
	p.alive++
}

func (p *ParticleGenerator) finish() {
	p.done = true
	p.alive = 0
	if p.completion != nil && !p.completionFired {
		p.completionFired = true
		p.completion()
	}
}

// Cancel stops all future evaluation and fires the completion callback if it
// has not fired yet. External teardown path; already-computed particle
// trajectories are simply dropped.
func (p *ParticleGenerator) Cancel() {
	if p.done {
		return
	}
	p.finish()
}

// origin is the generator's world position at the current elapsed time,
// including parent following.
func (p *ParticleGenerator) origin() (float64, float64) {
	x := p.model.PositionX.At(p.elapsed)
	y := p.model.PositionY.At(p.elapsed)
	if p.model.MovesWithParent && p.owner != nil {
		c := p.owner.Bounds().Center()
		x += c.X - p.baseX
		y += c.Y - p.baseY
	}
	return x, y
}

// State evaluates the generator-level position, rotation, and color at the
// current elapsed time. The alpha component includes the end-of-life fade
// when one is configured.
func (p *ParticleGenerator) State() GeneratorState {
	t := p.elapsed
	s := GeneratorState{
		Color: Color{
			R: p.model.Red.At(t),
			G: p.model.Green.At(t),
			B: p.model.Blue.At(t),
			A: p.model.Alpha.At(t) * p.fadeFactor(t),
		},
	}
	s.X, s.Y = p.origin()
	if p.model.Rotation != nil {
		s.Rotation = p.model.Rotation.At(t)
		s.HasRotation = true
	}
	return s
}

// Particles appends the evaluated state of every live particle to buf and
// returns it. Pass a retained buffer to avoid per-frame allocation.
func (p *ParticleGenerator) Particles(buf []ParticleState) []ParticleState {
	ox, oy := p.origin()
	for i := 0; i < p.alive; i++ {
		pt := &p.particles[i]
		age := p.elapsed - pt.birth
		buf = append(buf, ParticleState{
			X:         ox + pt.posX.At(age),
			Y:         oy + pt.posY.At(age),
			Width:     pt.width,
			Height:    pt.height,
			FrameTime: age + pt.frameOffset,
		})
	}
	return buf
}

// Done reports whether the generator's duration has elapsed or it has been
// cancelled.
func (p *ParticleGenerator) Done() bool {
	return p.done
}

// Elapsed returns seconds since activation.
func (p *ParticleGenerator) Elapsed() float64 {
	return p.elapsed
}

// AliveCount returns the number of live particles.
func (p *ParticleGenerator) AliveCount() int {
	return p.alive
}

// IsBlocking reports whether this animation blocks.
func (p *ParticleGenerator) IsBlocking() bool {
	return p.model.IsBlocking
}

// DrawAboveEntities reports the configured layering.
func (p *ParticleGenerator) DrawAboveEntities() bool {
	return p.model.DrawAboveEntities
}

// Image returns the resolved image resource.
func (p *ParticleGenerator) Image() *ebiten.Image {
	return p.image
}
