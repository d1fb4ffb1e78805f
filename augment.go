// SPDX-License-Identifier: EPL-2.0

package audaug

import (
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/augment"
	"github.com/ik5/audaug/utils"
)

// AugmentToMono16 reads src through the resample -> mono pipeline, applies
// aug to the whole signal and returns it as 16-bit PCM with its sample rate.
//
// targetRate <= 0 keeps the source rate. A nil aug skips augmentation.
// Errors from aug are returned as they are.
func AugmentToMono16(src audio.Source, aug augment.Augmenter, targetRate int, bufferSize int) ([]int16, int, error) {
	samples, rate, err := audio.ReadMono(src, targetRate, bufferSize)
	if err != nil {
		return nil, rate, err
	}

	if aug != nil {
		samples, err = aug.Augment(samples)
		if err != nil {
			return nil, rate, err
		}
	}

	return utils.Float32sToInt16s(nil, samples), rate, nil
}

// ResampleToMono16 resamples src to targetRate, mixes it to mono and collects
// it as 16-bit PCM.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	return AugmentToMono16(src, nil, targetRate, bufferSize)
}
