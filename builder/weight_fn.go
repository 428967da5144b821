// File: weight_fn.go
// Role: edge weight distributions.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathfinder/core"
)

// ConstantWeight always yields w.
func ConstantWeight(w core.Weight) WeightFn {
	return func(*rand.Rand) core.Weight { return w }
}

// UniformWeight samples uniformly in [lo, hi]. With a nil rng it yields lo.
// Panics if hi < lo.
func UniformWeight(lo, hi core.Weight) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight(%d, %d): hi < lo", lo, hi))
	}
	span := hi - lo

	return func(rng *rand.Rand) core.Weight {
		switch {
		case rng == nil || span == 0:
			return lo
		case span < 1<<62:
			return lo + core.Weight(rng.Int63n(int64(span)+1))
		case span == ^core.Weight(0):
			return rng.Uint64()
		default:
			return lo + rng.Uint64()%(span+1)
		}
	}
}
