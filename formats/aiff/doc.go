// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is supported, with any channel count
// and sample rate:
//
//	file, _ := os.Open("speech.aiff")
//	src, err := aiff.Decoder{}.Decode(file)
//
// go-audio seeks between chunks, so readers that cannot seek are read into
// memory before decoding.
package aiff
