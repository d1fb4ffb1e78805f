// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageSelector_FullCoverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		n          int
		zone       [2]float64
		start, end int
	}{
		{name: "default zone", n: 1000, zone: [2]float64{0.2, 0.8}, start: 200, end: 800},
		{name: "whole signal", n: 10, zone: [2]float64{0, 1}, start: 0, end: 10},
		{name: "empty zone", n: 100, zone: [2]float64{0.5, 0.5}, start: 50, end: 50},
		{name: "single sample", n: 1, zone: [2]float64{0, 1}, start: 0, end: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sel := CoverageSelector{Rand: &scriptedRand{values: []int{3}}}
			start, end, err := sel.Select(make([]float32, tt.n), tt.zone, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestCoverageSelector_PartialCoverage(t *testing.T) {
	t.Parallel()

	data := make([]float32, 1000)
	zone := [2]float64{0.2, 0.8}

	// zone [200, 800), 300 samples covered, start drawn from [200, 500)
	for _, r := range []int{0, 1, 150, 299, 300, 1234} {
		sel := CoverageSelector{Rand: &scriptedRand{values: []int{r}}}

		start, end, err := sel.Select(data, zone, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 200+r%300, start)
		assert.Equal(t, start+300, end)
	}
}

func TestCoverageSelector_RandomStaysInZone(t *testing.T) {
	t.Parallel()

	data := make([]float32, 16000)
	zone := [2]float64{0.1, 0.9}
	sel := CoverageSelector{Rand: NewRand(3)}

	starts := make(map[int]bool)
	for range 500 {
		start, end, err := sel.Select(data, zone, 0.3)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, start, 1600)
		// lastStart = 1600 + 8960 is never drawn
		assert.Less(t, start, 1600+8960)
		assert.LessOrEqual(t, end, 14400)
		assert.Equal(t, 3840, end-start, "0.3 of a 12800 sample zone")
		starts[start] = true
	}

	assert.Greater(t, len(starts), 1, "start never moved")
}

func TestCoverageSelector_Errors(t *testing.T) {
	t.Parallel()

	sel := CoverageSelector{Rand: NewRand(1)}

	_, _, err := sel.Select(nil, [2]float64{0.2, 0.8}, 1)
	assert.ErrorIs(t, err, ErrEmptySignal)

	for _, tt := range []struct {
		zone     [2]float64
		coverage float64
	}{
		{zone: [2]float64{-0.1, 0.8}, coverage: 1},
		{zone: [2]float64{0.2, 1.2}, coverage: 1},
		{zone: [2]float64{0.8, 0.2}, coverage: 1},
		{zone: [2]float64{0.2, 0.8}, coverage: 1.5},
		{zone: [2]float64{0.2, 0.8}, coverage: -0.5},
	} {
		_, _, err := sel.Select(make([]float32, 10), tt.zone, tt.coverage)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "zone %v coverage %v", tt.zone, tt.coverage)
	}
}
