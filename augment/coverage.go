// SPDX-License-Identifier: EPL-2.0

package augment

// RangeSelector picks the half-open range [start, end) of data to augment.
type RangeSelector interface {
	Select(data []float32, zone [2]float64, coverage float64) (start, end int, err error)
}

// CoverageSelector picks a window of coverage*zone length at a random offset
// inside the zone. With full coverage the window is the whole zone.
// The offset is drawn from [zoneStart, lastStart), so the window never starts
// at lastStart itself.
type CoverageSelector struct {
	Rand Rand
}

func (c CoverageSelector) Select(data []float32, zone [2]float64, coverage float64) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptySignal
	}
	if err := ValidateZone(zone, coverage); err != nil {
		return 0, 0, err
	}

	n := float64(len(data))
	zoneStart, zoneEnd := int(n*zone[0]), int(n*zone[1])
	zoneSize := zoneEnd - zoneStart
	target := int(float64(zoneSize) * coverage)
	lastStart := zoneStart + int(float64(zoneSize)*(1-coverage))

	if lastStart <= zoneStart {
		return zoneStart, zoneEnd, nil
	}

	start := zoneStart + c.Rand.IntN(lastStart-zoneStart)
	return start, start + target, nil
}
