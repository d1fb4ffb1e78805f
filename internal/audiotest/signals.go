// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// SineAt returns the value of a unit sine at sample index i.
func SineAt(i int, sampleRate int, frequency float64) float64 {
	t := float64(i) / float64(sampleRate)
	return math.Sin(2 * math.Pi * frequency * t)
}

// Sine returns n samples of a sine with the given amplitude.
func Sine(n int, sampleRate int, frequency float64, amplitude float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = amplitude * float32(SineAt(i, sampleRate, frequency))
	}
	return out
}

// Ramp returns 0, 1, ..., n-1 scaled by step. Useful to tell samples apart.
func Ramp(n int, step float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) * step
	}
	return out
}

// RMS is the root mean square of data, 0 for an empty slice.
func RMS(data []float32) float64 {
	if len(data) == 0 {
		return 0
	}

	var sum float64
	for _, v := range data {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(data)))
}
