// SPDX-License-Identifier: EPL-2.0

// Package audaug turns audio files into speed-augmented training variants.
//
// Decoding and the resample -> mono pipeline live in the audio package and
// its formats subpackages. The augment package chooses what to change and
// the stretch package changes it.
//
// # Supported Formats
//
//   - WAV (PCM 8, 16, 24 and 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// # Quick Start
//
//	src, _ := wav.Decoder{}.Decode(file)
//	aug, _ := augment.NewSpeedAug(augment.DefaultSpeedOptions())
//
//	// one speed-augmented variant at 16kHz mono, 16-bit PCM
//	samples, rate, _ := audaug.AugmentToMono16(src, aug, 16000, 4096)
//
//	wav.WriteWAV16(out, rate, 1, samples)
//
// ResampleToMono16 runs the same pipeline without augmentation.
package audaug
