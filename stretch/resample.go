// SPDX-License-Identifier: EPL-2.0

package stretch

import "github.com/ik5/audaug/utils"

// Resample changes speed the way a tape does: the segment is re-read at
// factor samples per output sample with Catmull-Rom interpolation, so the
// pitch moves with the speed. The stretched segment has int(len/factor) samples.
type Resample struct{}

func (Resample) Manipulate(data []float32, start, end int, factor float64) ([]float32, error) {
	return manipulate(data, start, end, factor, resampleSegment)
}

func resampleSegment(segment []float32, factor float64) ([]float32, error) {
	out := make([]float32, int(float64(len(segment))/factor))
	for i := range out {
		out[i] = utils.CubicAt(segment, float64(i)*factor)
	}

	return out, nil
}
