// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astilog"
	astipcm "github.com/asticode/go-astitools/pcm"
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/augment"
	"github.com/ik5/audaug/formats/aiff"
	"github.com/ik5/audaug/formats/mp3"
	"github.com/ik5/audaug/formats/vorbis"
	"github.com/ik5/audaug/formats/wav"
	"github.com/ik5/audaug/stretch"
	"github.com/ik5/audaug/utils"
	"github.com/pkg/errors"
)

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

func newAugmenter(c *Configuration) (*augment.SpeedAug, error) {
	var opts []augment.Option
	if c.Seed != 0 {
		opts = append(opts, augment.WithRand(augment.NewRand(c.Seed)))
	}
	if c.Tape {
		opts = append(opts, augment.WithModel(stretch.Resample{}))
	}

	return augment.NewSpeedAug(c.Augment, opts...)
}

// variantPath names variant k of n. A single variant keeps the output path.
func variantPath(out string, k, n int) string {
	if n == 1 {
		return out
	}
	return fmt.Sprintf("%s-%d.wav", strings.TrimSuffix(out, filepath.Ext(out)), k+1)
}

func audioLevel(samples []float32) float64 {
	return astipcm.AudioLevel(utils.Float32sToInts(samples))
}

func run(c *Configuration, in, out string) error {
	if c.Count < 1 {
		return augment.ErrInvalidCount
	}

	aug, err := newAugmenter(c)
	if err != nil {
		return errors.Wrap(err, "speedaug: creating augmenter failed")
	}

	// Decode
	f, err := os.Open(in)
	if err != nil {
		return errors.Wrapf(err, "speedaug: opening %s failed", in)
	}
	defer f.Close()

	src, err := newRegistry().Open(filepath.Ext(in), f)
	if err != nil {
		return errors.Wrapf(err, "speedaug: decoding %s failed", in)
	}
	defer src.Close()

	samples, rate, err := audio.ReadMono(src, c.SampleRate, c.BufferSize)
	if err != nil {
		return errors.Wrapf(err, "speedaug: reading %s failed", in)
	}
	astilog.Infof("speedaug: read %d samples at %d Hz from %s, level %.0f", len(samples), rate, in, audioLevel(samples))

	// Augment
	var pcm []int16
	for k := range c.Count {
		variant, rec, err := aug.SubstituteRecord(samples)
		if err != nil {
			return errors.Wrapf(err, "speedaug: augmenting variant %d failed", k+1)
		}

		path := variantPath(out, k, c.Count)
		pcm = utils.Float32sToInt16s(pcm, variant)
		if err := writeWAV(path, rate, pcm); err != nil {
			return err
		}

		astilog.Infof("speedaug: wrote %s, [%d, %d) at %.1fx, %d samples, level %.0f",
			path, rec.StartPos, rec.EndPos, rec.Factor, len(variant), audioLevel(variant))
	}

	return nil
}

func writeWAV(path string, rate int, pcm []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "speedaug: creating %s failed", path)
	}
	defer f.Close()

	if err = wav.WriteWAV16(f, rate, 1, pcm); err != nil {
		return errors.Wrapf(err, "speedaug: writing %s failed", path)
	}

	return f.Close()
}
