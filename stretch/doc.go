// SPDX-License-Identifier: EPL-2.0

// Package stretch changes the speed of a sub-range of a signal.
//
// A Model receives the whole signal, the half-open range [start, end) and a
// speed factor. It returns a new signal where the range was replaced by a
// version played factor times faster (factor > 1 shortens it, factor < 1
// lengthens it). Samples outside the range are copied unchanged.
//
//	model, err := stretch.NewPhaseVocoder(2048, 512)
//	out, err := model.Manipulate(samples, 4000, 12000, 1.5)
//
// PhaseVocoder keeps the pitch. Resample behaves like a tape played at a
// different speed, so the pitch follows the factor.
package stretch
