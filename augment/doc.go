// SPDX-License-Identifier: EPL-2.0

// Package augment produces synthetic training variants of audio signals.
//
// SpeedAug replaces a random part of a signal with a sped up or slowed down
// copy of itself:
//
//	aug, err := augment.NewSpeedAug(augment.DefaultSpeedOptions())
//	variant, err := aug.Augment(samples)
//
// Each call draws a speed factor from Options.Factor in steps of 0.1, never
// 1.0, and a range from Options.Zone and Options.Coverage. The range is
// handed to a stretch.Model together with the factor.
//
// # Records
//
// SubstituteRecord returns the chosen range and factor with the result and
// keeps no state. When Options.Stateless is false, Substitute also stores the
// last record on the augmenter, readable with LastRecord.
//
// # Randomness
//
// Randomness comes from a Rand. NewRand returns one that is safe for
// concurrent use, so a stateless SpeedAug can be shared between goroutines.
// Pass a seeded Rand with WithRand to get repeatable results.
package augment
