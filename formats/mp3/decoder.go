// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/utils"
	"github.com/pkg/errors"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
)

// pcmReader is the part of gomp3.Decoder a source reads from.
type pcmReader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec pcmReader
	buf []byte
}

func newSource(dec pcmReader) *source {
	return &source{dec: dec, buf: make([]byte, 8192)}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := (len(dst) - len(dst)%channels) * bytesPerSample
	if want == 0 {
		return 0, nil
	}
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	// whole frames only, a short final read ends the stream
	n, err := io.ReadFull(s.dec, s.buf)
	n -= n % (channels * bytesPerSample)

	for i := range n / bytesPerSample {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	switch err {
	case nil:
		return n / bytesPerSample, nil
	case io.EOF, io.ErrUnexpectedEOF:
		return n / bytesPerSample, io.EOF
	default:
		return n / bytesPerSample, errors.Wrap(err, "mp3: decoding frame failed")
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, errors.Wrap(err, "mp3: reading header failed")
	}

	return newSource(dec), nil
}
