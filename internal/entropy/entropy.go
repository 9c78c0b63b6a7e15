// Package entropy provides the default random index source.
package entropy

import "math/rand/v2"

// Source is the default source backing pad generation. It draws from the
// math/rand/v2 global generator and is not suitable for cryptographic use.
var Source = &Rand{}

// Rand is a non-secure uniform index source.
type Rand struct{}

// Name returns the name of the source.
func (r *Rand) Name() string {
	return "math/rand"
}

// Intn returns a uniformly distributed index in [0, n).
func (r *Rand) Intn(n int) int {
	return rand.IntN(n)
}
