// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// Flags
var (
	config     = flag.String("c", "", "the config path")
	count      = flag.Int("n", 0, "the number of variants")
	inputPath  = flag.String("i", "", "the input audio path")
	outputPath = flag.String("o", "", "the output wav path")
	sampleRate = flag.Int("rate", 0, "the output sample rate, 0 keeps the input rate")
	seed       = flag.Uint64("seed", 0, "the random seed, 0 picks one")
	tape       = flag.Bool("tape", false, "change pitch with speed like a tape")
)

func main() {
	// Parse flags
	flag.Parse()
	astilog.FlagInit()

	// Init configuration
	c := newConfiguration()

	if *inputPath == "" || *outputPath == "" {
		astilog.Fatal("speedaug: -i and -o are required")
	}

	// Run
	if err := run(c, *inputPath, *outputPath); err != nil {
		astilog.Fatal(errors.Wrap(err, "speedaug: running failed"))
	}
}
