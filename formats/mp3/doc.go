// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source from this package
// reports two channels whatever the file holds. Mono files come out with
// the same signal on both channels.
//
//	file, _ := os.Open("speech.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
