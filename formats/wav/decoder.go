// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/formats/internal/intpcm"
	"github.com/pkg/errors"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode reads the WAV header and returns a Source over its PCM data.
// Inputs that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if err := dec.Err(); err != nil {
		return nil, errors.Wrap(err, "wav: reading header failed")
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "format tag %#x", dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, errors.Wrapf(ErrUnsupportedBitDepth, "%d bits", dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrInvalidChannels
	}

	return intpcm.NewSource(dec, format, int(dec.BitDepth)), nil
}
