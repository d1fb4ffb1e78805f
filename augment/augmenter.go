// SPDX-License-Identifier: EPL-2.0

package augment

import "github.com/pkg/errors"

// Augmenter turns a signal into a new variant. The input is never modified.
type Augmenter interface {
	Name() string
	Augment(data []float32) ([]float32, error)
}

// AugmentN returns n variants of data, each drawn independently.
func AugmentN(a Augmenter, data []float32, n int) ([][]float32, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}

	out := make([][]float32, 0, n)
	for i := range n {
		v, err := a.Augment(data)
		if err != nil {
			return nil, errors.Wrapf(err, "augment: %s variant %d failed", a.Name(), i)
		}
		out = append(out, v)
	}

	return out, nil
}
