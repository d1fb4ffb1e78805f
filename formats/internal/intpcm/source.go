// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts the go-audio integer PCM decoders (wav, aiff) to audio.Source.
package intpcm

import (
	"bytes"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audaug/utils"
	"github.com/pkg/errors"
)

// Reader is the part of the go-audio wav and aiff decoders a Source reads from.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM of a fixed bit depth to float32.
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	buf      *goaudio.IntBuffer
	done     bool
}

func NewSource(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%max(s.format.NumChannels, 1)
	if want == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < want {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, want),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:want]

	n, err := s.dec.PCMBuffer(s.buf)
	for i := range n {
		dst[i] = utils.IntToFloat32(s.buf.Data[i], s.bitDepth)
	}

	switch {
	case err != nil && err != io.EOF:
		return n, errors.Wrap(err, "intpcm: reading PCM failed")
	case err == io.EOF || n < want:
		// go-audio signals the end with a short read
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

// ReadSeeker returns r when it can seek, otherwise it buffers r in memory.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "intpcm: buffering input failed")
	}

	return bytes.NewReader(data), nil
}
