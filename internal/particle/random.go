package particle

import (
	"math"
	"math/rand"
)

// BiasedRandom returns a value in [0, 1) skewed towards 1 when bias > 0 and
// towards 0 when bias < 0. A bias of 0 is a plain uniform draw.
//
//	bias > 0: 1 - r^(bias+1)
//	bias < 0: r^(-bias+1)
func BiasedRandom(rng *rand.Rand, bias float64) float64 {
	r := rng.Float64()
	switch {
	case bias > 0:
		return 1 - math.Pow(r, bias+1)
	case bias < 0:
		return math.Pow(r, -bias+1)
	default:
		return r
	}
}

// RandomInRange returns a random float64 in the range [min, max].
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandomSpread returns a random value in [-spread, spread].
func RandomSpread(rng *rand.Rand, spread float64) float64 {
	return RandomInRange(rng, -spread, spread)
}
