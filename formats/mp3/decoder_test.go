// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audaug/audio"
)

// fakeMP3 serves 16-bit little-endian PCM in chunks of at most chunk bytes.
type fakeMP3 struct {
	data  []byte
	chunk int
	err   error
}

func newFakeMP3(samples []int16, chunk int) *fakeMP3 {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &fakeMP3{data: data, chunk: chunk}
}

func (f *fakeMP3) SampleRate() int { return 44100 }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if len(f.data) == 0 {
		return 0, io.EOF
	}

	n := copy(p[:min(len(p), f.chunk)], f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, in := range map[string][]byte{
		"empty": {},
		"text":  []byte("definitely not an mp3 stream"),
	} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(in)); err == nil {
			t.Errorf("%s: Decode() error = nil, want error", name)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, -32768, 8192, -8192}

	tests := []struct {
		name  string
		chunk int
	}{
		{name: "whole reads", chunk: 4096},
		{name: "odd chunks", chunk: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(newFakeMP3(samples, tt.chunk))
			if src.Channels() != 2 || src.SampleRate() != 44100 {
				t.Fatalf("format = %d Hz %d ch", src.SampleRate(), src.Channels())
			}

			got, err := audio.ReadAll(src, 4)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			want := []float32{0, 0.5, -0.5, -1, 0.25, -0.25}
			if len(got) != len(want) {
				t.Fatalf("got %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSource_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	// three samples are one and a half stereo frames
	src := newSource(newFakeMP3([]int16{1, 2, 3}, 64))

	n, err := src.ReadSamples(make([]float32, 8))
	if err != io.EOF {
		t.Fatalf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	src := newSource(&fakeMP3{err: boom})

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
