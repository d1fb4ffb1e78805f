// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/formats/internal/intpcm"
	"github.com/pkg/errors"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek between chunks
	rs, err := intpcm.ReadSeeker(r)
	if err != nil {
		return nil, errors.Wrap(err, "aiff: preparing input failed")
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, errors.Wrapf(ErrUnsupportedBitDepth, "%d bits", dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return intpcm.NewSource(dec, format, int(dec.BitDepth)), nil
}
