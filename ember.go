package ember

import (
	"log"
	"math/rand/v2"
)

// Color represents an RGBA color with components nominally in [0, 1].
// Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// globalDebug enables warning output on stderr (missing images, suspicious
// configuration). Off by default.
var globalDebug bool

// SetDebug toggles debug warning output for the whole package.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("ember: "+format, args...)
	}
}

// defaultSource is the shared entropy source used when the caller does not
// inject one. Ember is single-threaded by design (one simulation thread per
// frame), so no locking beyond rand/v2's own.
var defaultSource = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// source resolves an optional caller-supplied random source.
func source(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return defaultSource
}
