// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"math"

	"github.com/pkg/errors"
)

// Options configures an augmenter. The toml tags let it sit in a config file.
type Options struct {
	// Zone is the part of the signal, as fractions of its length, that may change.
	Zone [2]float64 `toml:"zone"`
	// Coverage is the fraction of the zone that does change.
	Coverage float64 `toml:"coverage"`
	// Factor is the speed factor range [low, high).
	Factor [2]float64 `toml:"factor"`
	// Name identifies the augmenter in logs.
	Name string `toml:"name"`
	// Stateless disables LastRecord.
	Stateless bool `toml:"stateless"`
	// Verbose logs every substitution at debug level.
	Verbose bool `toml:"verbose"`
}

// DefaultSpeedOptions leaves the first and last 20% untouched, stretches the
// whole remaining zone and draws factors from [0.5, 2).
func DefaultSpeedOptions() Options {
	return Options{
		Zone:      [2]float64{0.2, 0.8},
		Coverage:  1,
		Factor:    [2]float64{0.5, 2},
		Name:      "Speed_Aug",
		Stateless: true,
	}
}

// ValidateZone checks zone and coverage, the inputs of a RangeSelector.
func ValidateZone(zone [2]float64, coverage float64) error {
	if !unit(zone[0]) || !unit(zone[1]) {
		return errors.Wrapf(ErrInvalidConfiguration, "zone %v must lie within [0, 1]", zone)
	}
	if zone[0] > zone[1] {
		return errors.Wrapf(ErrInvalidConfiguration, "zone %v must be ordered", zone)
	}
	if !unit(coverage) {
		return errors.Wrapf(ErrInvalidConfiguration, "coverage %v must lie within [0, 1]", coverage)
	}

	return nil
}

func unit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
