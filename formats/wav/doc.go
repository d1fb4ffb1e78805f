// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files with github.com/go-audio/wav.
//
// The Decoder reads integer PCM at 8, 16, 24 and 32 bits with any channel
// count and sample rate, and returns samples in [-1, 1):
//
//	file, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// WriteWAV16 writes 16-bit PCM:
//
//	out, _ := os.Create("speech-aug.wav")
//	err := wav.WriteWAV16(out, 16000, 1, samples)
//
// Non-PCM files fail with ErrUnsupportedEncoding and anything without a
// RIFF/WAVE header with ErrNotWavFile.
package wav
