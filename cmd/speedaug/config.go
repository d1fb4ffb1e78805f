// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/asticode/go-astilog"
	"github.com/asticode/go-astitools/config"
	"github.com/ik5/audaug/augment"
)

// Configuration represents a configuration
type Configuration struct {
	Augment    augment.Options `toml:"augment"`
	BufferSize int             `toml:"buffer_size"`
	Count      int             `toml:"count"`
	SampleRate int             `toml:"sample_rate"`
	Seed       uint64          `toml:"seed"`
	Tape       bool            `toml:"tape"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Augment:    augment.DefaultSpeedOptions(),
		BufferSize: 4096,
		Count:      1,
	}
}

// newConfiguration merges defaults, the config file and the flags
func newConfiguration() *Configuration {
	// Flag config
	fc := &Configuration{
		Count:      *count,
		SampleRate: *sampleRate,
		Seed:       *seed,
		Tape:       *tape,
	}

	// Build configuration
	c, err := asticonfig.New(defaultConfiguration(), *config, fc)
	if err != nil {
		astilog.Fatal(err)
	}
	return c.(*Configuration)
}
