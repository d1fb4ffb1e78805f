// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float64
		x              float64
		want           float64
		tolerance      float64
	}{
		{name: "start returns y1", y0: 0, y1: 1, y2: 2, y3: 3, x: 0, want: 1, tolerance: 1e-9},
		{name: "end returns y2", y0: 0, y1: 1, y2: 2, y3: 3, x: 1, want: 2, tolerance: 1e-9},
		{name: "linear data stays linear", y0: 1, y1: 2, y2: 3, y3: 4, x: 0.25, want: 2.25, tolerance: 1e-9},
		{name: "symmetric crossing", y0: -1, y1: -0.5, y2: 0.5, y3: 1, x: 0.5, want: 0, tolerance: 1e-9},
		{name: "silence", y0: 0, y1: 0, y2: 0, y3: 0, x: 0.5, want: 0, tolerance: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v", got, tt.want)
			}

			got32 := CubicInterpolate(float32(tt.y0), float32(tt.y1), float32(tt.y2), float32(tt.y3), float32(tt.x))
			if math.Abs(float64(got32)-tt.want) > tt.tolerance+1e-6 {
				t.Errorf("CubicInterpolate[float32]() = %v, want %v", got32, tt.want)
			}
		})
	}
}

func TestCubicAt(t *testing.T) {
	t.Parallel()

	ramp := []float32{0, 1, 2, 3, 4, 5}

	tests := []struct {
		name string
		pos  float64
		want float32
	}{
		{name: "integer index", pos: 2, want: 2},
		{name: "between samples", pos: 2.5, want: 2.5},
		{name: "first sample", pos: 0, want: 0},
		{name: "last sample", pos: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicAt(ramp, tt.pos)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("CubicAt(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestCubicAt_Empty(t *testing.T) {
	t.Parallel()

	if got := CubicAt([]float64(nil), 1.5); got != 0 {
		t.Errorf("CubicAt(nil) = %v, want 0", got)
	}
}

// TestCubicInterpolate_ZeroAllocs verifies no heap allocations
func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = CubicInterpolate[float32](0.5, 1.0, 0.8, 0.3, 0.5)
	})

	if allocs > 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicAt(b *testing.B) {
	samples := make([]float32, 8000)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ReportAllocs()

	var sink float32
	for i := range b.N {
		sink = CubicAt(samples, float64(i%7999)+0.37)
	}
	_ = sink
}
