package ember

import "math"

// Duration is a generator's elapsed-time budget: a finite number of seconds
// or infinite. The zero value is a finite zero-second duration.
type Duration struct {
	seconds  float64
	infinite bool
}

// For returns a finite Duration of s seconds.
func For(s float64) Duration {
	return Duration{seconds: s}
}

// Forever returns an infinite Duration.
func Forever() Duration {
	return Duration{infinite: true}
}

// IsInfinite reports whether the Duration never elapses.
func (d Duration) IsInfinite() bool {
	return d.infinite
}

// Seconds returns the budget in seconds, or +Inf for an infinite Duration.
func (d Duration) Seconds() float64 {
	if d.infinite {
		return math.Inf(1)
	}
	return d.seconds
}
