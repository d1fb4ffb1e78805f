// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"math/rand/v2"
	"sync"

	"github.com/asticode/go-astilog"
	"github.com/ik5/audaug/stretch"
)

// Record is what one substitution chose.
type Record struct {
	StartPos int
	EndPos   int
	Factor   float64
}

// Option replaces one of the collaborators of a SpeedAug.
type Option func(*SpeedAug)

// WithRand sets the random source used for factors and ranges.
func WithRand(r Rand) Option {
	return func(s *SpeedAug) { s.rng = r }
}

// WithModel sets the time-stretch model.
func WithModel(m stretch.Model) Option {
	return func(s *SpeedAug) { s.model = m }
}

// WithRangeSelector sets how the range to stretch is chosen.
func WithRangeSelector(r RangeSelector) Option {
	return func(s *SpeedAug) { s.selector = r }
}

// SpeedAug substitutes a random range of the signal with a time-stretched copy.
//
// A stateless SpeedAug is safe for concurrent use when its Rand, RangeSelector
// and Model are. A stateful one must not be shared without external locking
// if callers rely on LastRecord matching their own call.
type SpeedAug struct {
	opts       Options
	candidates []float64

	rng      Rand
	selector RangeSelector
	model    stretch.Model

	mu     sync.Mutex
	last   Record
	hasRec bool
}

// NewSpeedAug validates o and builds the augmenter. Without options it uses a
// randomly seeded Rand, a CoverageSelector and a default PhaseVocoder.
func NewSpeedAug(o Options, opts ...Option) (*SpeedAug, error) {
	if err := ValidateZone(o.Zone, o.Coverage); err != nil {
		return nil, err
	}

	candidates, err := FactorCandidates(o.Factor[0], o.Factor[1])
	if err != nil {
		return nil, err
	}

	s := &SpeedAug{
		opts:       o,
		candidates: candidates,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.rng == nil {
		s.rng = NewRand(rand.Uint64())
	}
	if s.selector == nil {
		s.selector = CoverageSelector{Rand: s.rng}
	}
	if s.model == nil {
		s.model = stretch.NewDefaultPhaseVocoder()
	}

	return s, nil
}

func (s *SpeedAug) Name() string { return s.opts.Name }

// Options returns the configuration the augmenter was built with.
func (s *SpeedAug) Options() Options { return s.opts }

// Candidates returns a copy of the factors RandomFactor draws from.
func (s *SpeedAug) Candidates() []float64 {
	return append([]float64(nil), s.candidates...)
}

// RandomFactor draws a speed factor from the configured range.
func (s *SpeedAug) RandomFactor() (float64, error) {
	return RandomFactor(s.candidates, s.rng)
}

// SubstituteRecord stretches a random range of data and reports what it chose.
// It never touches the augmenter's stored record. Errors from the range
// selector or the model are returned as they are.
func (s *SpeedAug) SubstituteRecord(data []float32) ([]float32, Record, error) {
	factor, err := s.RandomFactor()
	if err != nil {
		return nil, Record{}, err
	}

	start, end, err := s.selector.Select(data, s.opts.Zone, s.opts.Coverage)
	if err != nil {
		return nil, Record{}, err
	}

	rec := Record{StartPos: start, EndPos: end, Factor: factor}

	out, err := s.model.Manipulate(data, start, end, factor)
	if err != nil {
		return nil, rec, err
	}

	if s.opts.Verbose {
		astilog.Debugf("augment: %s stretched [%d, %d) of %d samples by %.1f into %d samples",
			s.opts.Name, start, end, len(data), factor, len(out))
	}

	return out, rec, nil
}

// Substitute is SubstituteRecord that also stores the record unless the
// augmenter is stateless.
func (s *SpeedAug) Substitute(data []float32) ([]float32, error) {
	out, rec, err := s.SubstituteRecord(data)

	// a failed model call still stores what it was given
	if !s.opts.Stateless && rec.Factor != 0 {
		s.mu.Lock()
		s.last, s.hasRec = rec, true
		s.mu.Unlock()
	}

	return out, err
}

// Augment implements Augmenter.
func (s *SpeedAug) Augment(data []float32) ([]float32, error) {
	return s.Substitute(data)
}

// LastRecord returns the record of the latest Substitute call. ok is false
// for stateless augmenters and before the first call.
func (s *SpeedAug) LastRecord() (rec Record, ok bool) {
	if s.opts.Stateless {
		return Record{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last, s.hasRec
}
