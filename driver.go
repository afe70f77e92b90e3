package ember

// AnimSet is a minimal animation driver: an ordered set of running
// ParticleGenerators advanced together each frame. It implements Driver, so
// an AnimSet can be handed to Activate via Env.Driver. Completed instances
// are dropped on the update following their completion.
//
// Embedding games with their own animation scheduling can ignore AnimSet and
// implement Driver themselves.
type AnimSet struct {
	gens []*ParticleGenerator
}

// NewAnimSet returns an empty driver.
func NewAnimSet() *AnimSet {
	return &AnimSet{}
}

// Add registers a runtime instance for advancement.
func (a *AnimSet) Add(g *ParticleGenerator) {
	a.gens = append(a.gens, g)
}

// Update advances every registered instance by dt seconds and drops the ones
// that finished on a previous update. Registration order is preserved.
func (a *AnimSet) Update(dt float64) {
	kept := a.gens[:0]
	for _, g := range a.gens {
		if g.Done() {
			continue
		}
		g.Update(dt)
		kept = append(kept, g)
	}
	// Release dropped tails so finished generators can be collected.
	for i := len(kept); i < len(a.gens); i++ {
		a.gens[i] = nil
	}
	a.gens = kept
}

// Blocked reports whether any live generator is blocking. Games typically
// hold off input or turn advancement while Blocked returns true.
func (a *AnimSet) Blocked() bool {
	for _, g := range a.gens {
		if !g.Done() && g.IsBlocking() {
			return true
		}
	}
	return false
}

// Len returns the number of registered live instances.
func (a *AnimSet) Len() int {
	return len(a.gens)
}

// Generators returns the live instances in registration order. The slice is
// owned by the AnimSet; callers must not retain it across updates.
func (a *AnimSet) Generators() []*ParticleGenerator {
	return a.gens
}
