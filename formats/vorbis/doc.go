// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float32, so samples reach the pipeline without
// an integer conversion step.
//
//	file, _ := os.Open("speech.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
