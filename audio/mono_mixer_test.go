// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/audaug/internal/audiotest"
)

func TestMonoMixer_Mixing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		value    func(channel int) float32
		want     float32
	}{
		{name: "mono passthrough", channels: 1, value: func(int) float32 { return 0.25 }, want: 0.25},
		{name: "stereo average", channels: 2, value: func(c int) float32 { return []float32{0.2, 0.6}[c] }, want: 0.4},
		{name: "opposite phase cancels", channels: 2, value: func(c int) float32 { return []float32{0.5, -0.5}[c] }, want: 0},
		{name: "five channels", channels: 5, value: func(c int) float32 { return float32(c) * 0.1 }, want: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_ int, c int) float32 { return tt.value(c) })
			mono := NewMonoMixer(src)

			if mono.Channels() != 1 {
				t.Errorf("Channels() = %d, want 1", mono.Channels())
			}

			buf := make([]float32, 100)
			n, err := mono.ReadSamples(buf)
			if err != nil && err != io.EOF {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 100 {
				t.Fatalf("ReadSamples() n = %d, want 100", n)
			}

			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Fatalf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))

	n, err := mono.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_LargeBufferGrowsScratch(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewConstantSource(8000, 4, 10000, 0.5))

	buf := make([]float32, 10000)
	n, _ := mono.ReadSamples(buf)
	if n != 10000 {
		t.Errorf("ReadSamples() n = %d, want 10000", n)
	}
}

func TestMonoMixer_PreservesRateAndCloses(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(22050, 2, 10)
	mono := NewMonoMixer(src)

	if mono.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", mono.SampleRate())
	}
	if err := mono.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	buf := make([]float32, 4096)
	src := audiotest.NewSineSource(44100, 2, 1<<30, 440)
	mono := NewMonoMixer(src)

	b.ReportAllocs()
	for range b.N {
		_, _ = mono.ReadSamples(buf)
	}
}
