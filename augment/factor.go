// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"math"

	"github.com/pkg/errors"
)

// FactorStep is the granularity of speed factors.
const FactorStep = 0.1

// MaxFactorCandidates bounds the size of a factor range: (high-low)/FactorStep
// may not exceed it.
const MaxFactorCandidates = 10000

const factorEps = 1e-9

// FactorCandidates lists the speed factors a range can yield: low, low+0.1, ...
// below high, each rounded to one decimal. The upper bound is exclusive, values
// that round outside [low, high) are dropped, and 1.0 is never a candidate since
// it would leave the audio unchanged.
func FactorCandidates(low, high float64) ([]float64, error) {
	if !(low > 0) || math.IsInf(high, 0) || math.IsNaN(high) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "factor range (%v, %v) must be positive and finite", low, high)
	}
	if low >= high {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "factor range (%v, %v) must have low < high", low, high)
	}

	steps := (high - low) / FactorStep
	if steps > MaxFactorCandidates {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "factor range (%v, %v) spans more than %d steps", low, high, MaxFactorCandidates)
	}

	count := int(math.Ceil(steps - factorEps))
	out := make([]float64, 0, count)

	for i := range count {
		v := math.Round((low+float64(i)*FactorStep)*10) / 10
		if v < low-factorEps || v >= high-factorEps || v == 1.0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "factor range (%v, %v) has no value other than 1.0", low, high)
	}

	return out, nil
}

// RandomFactor picks one of candidates uniformly.
func RandomFactor(candidates []float64, rng Rand) (float64, error) {
	if len(candidates) == 0 {
		return 0, errors.Wrap(ErrInvalidConfiguration, "no speed factor to choose from")
	}

	return candidates[rng.IntN(len(candidates))], nil
}
