// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/pkg/errors"
)

// ReadAll drains src into one interleaved slice, reading bufferSize samples at a time.
// bufferSize is rounded down to a whole number of frames.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	channels := max(src.Channels(), 1)
	bufferSize -= bufferSize % channels
	if bufferSize <= 0 {
		return nil, ErrInvalidBufferSize
	}

	out := make([]float32, 0, max(src.SampleRate(), bufferSize))
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "audio: reading source failed")
		}
	}
}

// ReadMono builds the resample -> mono pipeline over src and collects it.
// targetRate <= 0 or equal to the source rate skips resampling.
// The returned rate is the rate of the collected signal.
func ReadMono(src Source, targetRate int, bufferSize int) ([]float32, int, error) {
	var (
		stage Source = src
		rate         = src.SampleRate()
	)

	if targetRate > 0 && targetRate != rate {
		r, err := NewResampler(src, targetRate)
		if err != nil {
			return nil, 0, err
		}
		stage, rate = r, targetRate
	}

	samples, err := ReadAll(NewMonoMixer(stage), bufferSize)
	if err != nil {
		return nil, rate, err
	}

	return samples, rate, nil
}
