package ember

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrImageNotFound is reported by Activate when the configured image
// identifier does not resolve. The generator is never created and nothing is
// registered with the driver.
var ErrImageNotFound = errors.New("image not found")

// Owner is the entity a generator is attached to. Its bounds seed the default
// generator origin (the owner's center) at construction time, and are
// re-read each update when the generator moves with its parent.
type Owner interface {
	Bounds() Rect
}

// ImageSource resolves a named image identifier to a loaded image resource.
type ImageSource interface {
	Image(name string) (*ebiten.Image, bool)
}

// Driver accepts fully-built runtime instances for frame-by-frame advancement.
// AnimSet is the reference implementation.
type Driver interface {
	Add(*ParticleGenerator)
}

// Env carries the external capabilities activation needs. Images is
// required; a nil Driver skips registration (the caller drives the returned
// instance itself); a nil Rand uses the package entropy source.
type Env struct {
	Images ImageSource
	Driver Driver
	Rand   *rand.Rand
}

// Callback is a scheduled or completion callback. Callbacks run synchronously
// on the simulation thread from within ParticleGenerator.Update.
type Callback func()

type scheduledCallback struct {
	time float64 // seconds after activation
	fn   Callback
}

// Generator is the mutable configuration object for one particle animation.
// Setters may be called in any order; Activate freezes the configuration into
// an independent runtime instance. A Generator can be activated any number of
// times, each activation producing an instance sharing no mutable state with
// the Generator or with other instances.
type Generator struct {
	owner      Owner
	image      string
	completion Callback
	callbacks  []scheduledCallback
	model      GeneratorModel
}

// NewGenerator returns a Generator attached to owner, drawing the named
// image, with the given elapsed-time budget. The generator's origin defaults
// to the owner's center; a nil owner places it at (0, 0).
func NewGenerator(owner Owner, image string, duration Duration) *Generator {
	var center Vec2
	if owner != nil {
		center = owner.Bounds().Center()
	}
	return &Generator{
		owner: owner,
		image: image,
		model: NewGeneratorModel(duration, center.X, center.Y),
	}
}

// NewOneShot returns a Generator configured as a jump-started one-frame
// animation: one particle pre-seeded at activation and a zero spawn rate.
func NewOneShot(owner Owner, image string, duration Duration) *Generator {
	g := NewGenerator(owner, image, duration)
	g.model.InitialOverflow = 1
	g.model.GenRate = FixedParam(0)
	return g
}

// Model returns the generator's model for direct inspection or tuning.
func (g *Generator) Model() *GeneratorModel {
	return &g.model
}

// Image returns the configured image identifier.
func (g *Generator) Image() string {
	return g.image
}

// SetBlocking overrides the default blocking behavior. By default only
// finite-duration generators block.
func (g *Generator) SetBlocking(blocking bool) {
	g.model.IsBlocking = blocking
}

// SetDrawBelowEntities layers this animation below the entity layer.
func (g *Generator) SetDrawBelowEntities() {
	g.model.DrawAboveEntities = false
}

// SetDrawAboveEntities layers this animation above the entity layer.
func (g *Generator) SetDrawAboveEntities() {
	g.model.DrawAboveEntities = true
}

// SetInitialGen sets the fractional particle count generated immediately on
// the animation's first frame, jump-starting it.
func (g *Generator) SetInitialGen(count float64) {
	g.model.InitialOverflow = count
}

// SetMovesWithParent makes the animation follow its owner's position, with
// the animation's own position evaluated on top.
func (g *Generator) SetMovesWithParent() {
	g.model.MovesWithParent = true
}

// SetGenRate sets the number of particles generated per second.
func (g *Generator) SetGenRate(rate Param) {
	g.model.GenRate = rate
}

// SetPosition sets the generator's overall world position. Each spawned
// particle's position is added on top.
func (g *Generator) SetPosition(x, y Param) {
	g.model.PositionX = x
	g.model.PositionY = y
}

// SetRotation sets an angle rotation in radians applied to all particles.
func (g *Generator) SetRotation(angle Param) {
	g.model.Rotation = &angle
}

// SetColor sets the red, green, and blue components, leaving alpha at its
// current value (fixed 1.0 unless previously changed). Components should
// evaluate within [0, 1].
func (g *Generator) SetColor(r, gr, b Param) {
	g.model.Red = r
	g.model.Green = gr
	g.model.Blue = b
}

// SetColorRGBA sets all four color components.
func (g *Generator) SetColorRGBA(r, gr, b, a Param) {
	g.SetColor(r, gr, b)
	g.model.Alpha = a
}

// SetAlpha sets the alpha component alone.
func (g *Generator) SetAlpha(a Param) {
	g.model.Alpha = a
}

// SetCompletionCallback sets the callback fired once when the generator's
// duration elapses. Last write wins. Never fired for infinite-duration
// generators unless the instance is cancelled.
func (g *Generator) SetCompletionCallback(fn Callback) {
	g.completion = fn
}

// AddCallback schedules fn to fire once the given time (seconds after
// activation) has elapsed. Appends unconditionally: duplicate times are
// legal and all fire independently, and insertion order need not be time
// order.
func (g *Generator) AddCallback(fn Callback, time float64) {
	g.callbacks = append(g.callbacks, scheduledCallback{time: time, fn: fn})
}

// SetParticlePositionDist sets the particle position distribution, using x
// for both axes. Angular coefficients are drawn jointly so one draw controls
// both axes coherently.
func (g *Generator) SetParticlePositionDist(x DistParam) {
	d := NewDistParam2D(x)
	g.model.ParticlePositionDist = &d
}

// SetParticlePositionDistXY sets independent per-axis position distributions.
func (g *Generator) SetParticlePositionDistXY(x, y DistParam) {
	d := NewDistParam2DXY(x, y)
	g.model.ParticlePositionDist = &d
}

// SetParticleDurationDist sets how long particles exist after being created,
// in seconds. Unset, particles live until the generator's duration elapses.
func (g *Generator) SetParticleDurationDist(duration Dist) {
	g.model.ParticleDurationDist = &duration
}

// SetParticleSizeDist sets the particle width and height distributions.
func (g *Generator) SetParticleSizeDist(width, height Dist) {
	g.model.ParticleSizeDist = &SizeDist{Width: width, Height: height}
}

// SetParticleFrameTimeOffsetDist sets a per-particle frame time offset. With
// a random distribution, particles using a timed image cease to be synced and
// start, loop, and stop at random times with respect to one another.
func (g *Generator) SetParticleFrameTimeOffsetDist(offset Dist) {
	g.model.ParticleFrameTimeOffsetDist = &offset
}

// Activate freezes the configuration and builds a runtime instance, resolving
// the image identifier and registering the instance with env.Driver when one
// is set. Fails with ErrImageNotFound if the identifier does not resolve; on
// failure no instance is created or registered.
func (g *Generator) Activate(env *Env) (*ParticleGenerator, error) {
	return g.activate(env, g.model.clone())
}

// ActivateAt is Activate with a fixed world-space translation applied to the
// position parameter before freezing. Used to replay one template at many
// origins without mutating the shared configuration.
func (g *Generator) ActivateAt(env *Env, x, y float64) (*ParticleGenerator, error) {
	m := g.model.clone()
	m.PositionX = m.PositionX.Offset(x)
	m.PositionY = m.PositionY.Offset(y)
	return g.activate(env, m)
}

func (g *Generator) activate(env *Env, model GeneratorModel) (*ParticleGenerator, error) {
	if env == nil || env.Images == nil {
		return nil, fmt.Errorf("ember: activate %q: no image source", g.image)
	}
	img, ok := env.Images.Image(g.image)
	if !ok {
		debugf("unable to locate image %q for particle generator", g.image)
		return nil, fmt.Errorf("ember: activate %q: %w", g.image, ErrImageNotFound)
	}

	p := newParticleGenerator(g.owner, img, model, env.Rand)
	p.completion = g.completion
	for _, cb := range g.callbacks {
		// The driver's native time unit is integer milliseconds; truncation
		// is the documented rounding policy.
		p.addCallback(cb.fn, int64(cb.time*1000))
	}

	if env.Driver != nil {
		env.Driver.Add(p)
	}
	return p, nil
}
