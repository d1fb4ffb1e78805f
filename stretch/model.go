// SPDX-License-Identifier: EPL-2.0

package stretch

import "math"

// Model stretches data[start:end] by factor and returns the spliced signal.
// Implementations never modify data.
type Model interface {
	Manipulate(data []float32, start, end int, factor float64) ([]float32, error)
}

// segmentFunc stretches a whole segment.
type segmentFunc func(segment []float32, factor float64) ([]float32, error)

// Splice returns data[:start] ++ segment ++ data[end:] in a new slice.
func Splice(data []float32, start, end int, segment []float32) []float32 {
	out := make([]float32, 0, len(data)-(end-start)+len(segment))
	out = append(out, data[:start]...)
	out = append(out, segment...)
	out = append(out, data[end:]...)

	return out
}

func validate(data []float32, start, end int, factor float64) error {
	if start < 0 || end < start || end > len(data) {
		return ErrInvalidRange
	}
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ErrInvalidFactor
	}

	return nil
}

func manipulate(data []float32, start, end int, factor float64, fn segmentFunc) ([]float32, error) {
	if err := validate(data, start, end, factor); err != nil {
		return nil, err
	}

	if start == end {
		out := make([]float32, len(data))
		copy(out, data)
		return out, nil
	}

	segment, err := fn(data[start:end], factor)
	if err != nil {
		return nil, err
	}

	return Splice(data, start, end, segment), nil
}
