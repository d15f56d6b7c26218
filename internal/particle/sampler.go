package particle

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrProbabilityOverflow is returned when the weights of a distribution add up to more than 1.
	ErrProbabilityOverflow = errors.New("probabilities can't add up to more than 1")
	// ErrEmptyDistribution is returned when a sampler is built without any entries.
	ErrEmptyDistribution = errors.New("distribution has no entries")
)

// probabilityEpsilon absorbs float noise in sums such as 0.1+0.2+...
const probabilityEpsilon = 1e-9

// Weighted pairs a value with the probability of drawing it.
type Weighted[T any] struct {
	Value T
	Prob  float64
}

// NewWeightedSampler builds a cumulative-probability table from entries and
// returns a function drawing one value per call.
//
// A draw picks the first bucket whose cumulative probability exceeds a
// uniform r in [0, 1). When the probabilities sum to less than 1 the
// remainder falls through to the last value.
func NewWeightedSampler[T any](entries []Weighted[T], rng *rand.Rand) (func() T, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyDistribution
	}

	cumulative := make([]float64, len(entries))
	sum := 0.0
	for i, e := range entries {
		if e.Prob < 0 {
			return nil, fmt.Errorf("entry %d has negative probability %v", i, e.Prob)
		}
		sum += e.Prob
		cumulative[i] = sum
	}
	if sum > 1+probabilityEpsilon {
		return nil, fmt.Errorf("%w (got %.4f)", ErrProbabilityOverflow, sum)
	}

	values := make([]T, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}

	return func() T {
		r := rng.Float64()
		for i, c := range cumulative {
			if c > r {
				return values[i]
			}
		}
		return values[len(values)-1]
	}, nil
}
