// Package noise layers opensimplex octaves into a single seeded 2-D
// evaluator, used for the optional bathymetric roughness perturbation.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Octaved sums a fixed number of normalized opensimplex octaves with
// geometrically decaying amplitudes.
type Octaved struct {
	os      opensimplex.Noise
	amps    []float64
	ampsSum float64
}

// New returns a new Octaved evaluator for the given seed. Persistence sets
// the amplitude falloff per octave.
func New(octaves int, persistence float64, seed int64) *Octaved {
	n := &Octaved{
		os:   opensimplex.NewNormalized(seed),
		amps: make([]float64, octaves),
	}
	for i := range n.amps {
		n.amps[i] = math.Pow(persistence, float64(i))
		n.ampsSum += n.amps[i]
	}
	return n
}

// Eval2 returns the layered noise value at the given point, in [0, 1].
func (n *Octaved) Eval2(x, y float64) float64 {
	var sum float64
	for i, amp := range n.amps {
		f := float64(int(1) << i)
		sum += amp * n.os.Eval2(x*f, y*f)
	}
	return sum / n.ampsSum
}
