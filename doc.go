// Package ember is a parametric, time-driven particle and animation core.
//
// Ember computes the visual state of particle effects as a pure function of
// elapsed time. A [Generator] is configured declaratively — kinematic
// parameters, random distributions, spawn rate, lifetime — and then activated
// into a frozen [ParticleGenerator] runtime instance that an animation driver
// advances frame by frame. Ember performs no rendering itself; the runtime
// instance exposes evaluated per-generator and per-particle state for a
// renderer to consume.
//
// # Quick start
//
//	gen := ember.NewGenerator(owner, "spark", ember.For(2))
//	gen.SetGenRate(ember.FixedParam(40))
//	gen.SetParticlePositionDist(ember.DistParamWithSpeed(
//		ember.AngularDist(0, 2*math.Pi, 0, 0.5),
//		ember.AngularDist(0, 2*math.Pi, 1, 3),
//	))
//	pgen, err := gen.Activate(&ember.Env{Images: images, Driver: anims})
//
// Each frame the driver calls [ParticleGenerator.Update] with the frame
// delta, then reads [ParticleGenerator.State] and
// [ParticleGenerator.Particles].
//
// # Parameters and distributions
//
// A [Param] is a scalar evolving over elapsed time t as value + speed·t +
// accel·t² + jerk·t³. A [Dist] is a random shape (fixed, uniform, or angular)
// sampled on demand. A [DistParam] is a Param whose coefficients are each
// drawn once from a Dist when a particle spawns; the materialized trajectory
// never re-rolls.
//
// # Configuration, activation, freezing
//
// A Generator is a mutable builder: setters may run in any order, and every
// field has a sane default. [Generator.Activate] resolves the configured
// image through the injected [Env], deep-copies the model, and registers the
// resulting instance with the driver. Activating twice yields two fully
// independent instances; mutating the Generator afterwards never affects an
// already-running animation. [Generator.ActivateAt] replays one template at a
// different world origin.
//
// # Templates
//
// Effects can also be described declaratively in YAML and parsed with
// [ParseTemplate]; see [Template] for the grammar.
//
// Ember is single-threaded and cooperative: configuration, activation, and
// updates all run synchronously on the caller's simulation thread.
package ember
