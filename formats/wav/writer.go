// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// WriteWAV16 writes interleaved 16-bit PCM samples as a WAV file.
// The header sizes are patched on close, hence the io.WriteSeeker.
func WriteWAV16(w io.WriteSeeker, sampleRate int, channels int, samples []int16) error {
	if channels < 1 || len(samples)%channels != 0 {
		return ErrInvalidChannels
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	e := wav.NewEncoder(w, sampleRate, 16, channels, formatPCM)

	if err := e.Write(&goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
	}); err != nil {
		return errors.Wrap(err, "wav: writing samples failed")
	}

	if err := e.Close(); err != nil {
		return errors.Wrap(err, "wav: closing encoder failed")
	}

	return nil
}
