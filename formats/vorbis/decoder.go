// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"io"

	"github.com/ik5/audaug/audio"
	"github.com/jfreymuth/oggvorbis"
	"github.com/pkg/errors"
)

// floatReader is the part of oggvorbis.Reader a source reads from.
type floatReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved samples and returns how many it wrote.
	Read(p []float32) (int, error)
}

type source struct {
	dec floatReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%max(s.dec.Channels(), 1)
	if want == 0 {
		return 0, nil
	}

	// oggvorbis may return less than asked before the end
	total := 0
	for total < want {
		n, err := s.dec.Read(dst[total:want])
		total += n

		if err == io.EOF {
			return total, io.EOF
		}
		if err != nil {
			return total, errors.Wrap(err, "vorbis: decoding packet failed")
		}
		if n == 0 {
			break
		}
	}

	return total, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "vorbis: reading headers failed")
	}

	return &source{dec: dec}, nil
}
