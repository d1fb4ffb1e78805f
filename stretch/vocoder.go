// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/pkg/errors"
)

const (
	DefaultFrameSize = 2048
	DefaultHop       = 512

	minFrameSize = 64
	normFloor    = 1e-12
)

// PhaseVocoder time-stretches a segment without changing its pitch.
//
// Analysis frames are taken every hop*factor samples and resynthesised every
// hop samples. Each bin's phase advances by its measured instantaneous
// frequency so partials stay coherent across the new frame spacing. The
// stretched segment has round(len/factor) samples.
//
// A PhaseVocoder is safe for concurrent use.
type PhaseVocoder struct {
	frameSize int
	hop       int
	window    []float64
	omega     []float64

	pool sync.Pool
}

// vocoderState holds the per-call FFT plan and buffers.
type vocoderState struct {
	plan      *algofft.Plan[complex128]
	frame     []float64
	spectrum  []complex128
	synthesis []complex128
	timeFrame []complex128
	re, im    []float64
	mag       []float64
	prevPhase []float64
	sumPhase  []float64
}

// NewPhaseVocoder creates a vocoder with the given FFT frame size and synthesis hop.
func NewPhaseVocoder(frameSize, hop int) (*PhaseVocoder, error) {
	if frameSize < minFrameSize || frameSize&(frameSize-1) != 0 {
		return nil, ErrInvalidFrameSize
	}
	if hop <= 0 || hop >= frameSize {
		return nil, ErrInvalidHop
	}

	// probe once so a bad size fails here and not on the first call
	if _, err := algofft.NewPlan64(frameSize); err != nil {
		return nil, errors.Wrap(err, "stretch: creating FFT plan failed")
	}

	bins := frameSize/2 + 1
	v := &PhaseVocoder{
		frameSize: frameSize,
		hop:       hop,
		window:    periodicHann(frameSize),
		omega:     make([]float64, bins),
	}
	for k := range bins {
		v.omega[k] = 2 * math.Pi * float64(k) / float64(frameSize)
	}

	return v, nil
}

// NewDefaultPhaseVocoder uses a 2048 sample frame and a 512 sample hop.
func NewDefaultPhaseVocoder() *PhaseVocoder {
	v, err := NewPhaseVocoder(DefaultFrameSize, DefaultHop)
	if err != nil {
		// the defaults are valid
		panic(err)
	}
	return v
}

func (v *PhaseVocoder) FrameSize() int { return v.frameSize }
func (v *PhaseVocoder) Hop() int       { return v.hop }

func (v *PhaseVocoder) Manipulate(data []float32, start, end int, factor float64) ([]float32, error) {
	return manipulate(data, start, end, factor, v.stretchSegment)
}

func (v *PhaseVocoder) getState() (*vocoderState, error) {
	if s, ok := v.pool.Get().(*vocoderState); ok {
		return s, nil
	}

	plan, err := algofft.NewPlan64(v.frameSize)
	if err != nil {
		return nil, errors.Wrap(err, "stretch: creating FFT plan failed")
	}

	bins := v.frameSize/2 + 1
	return &vocoderState{
		plan:      plan,
		frame:     make([]float64, v.frameSize),
		spectrum:  make([]complex128, v.frameSize),
		synthesis: make([]complex128, v.frameSize),
		timeFrame: make([]complex128, v.frameSize),
		re:        make([]float64, bins),
		im:        make([]float64, bins),
		mag:       make([]float64, bins),
		prevPhase: make([]float64, bins),
		sumPhase:  make([]float64, bins),
	}, nil
}

func (v *PhaseVocoder) stretchSegment(segment []float32, factor float64) ([]float32, error) {
	outLen := int(math.Round(float64(len(segment)) / factor))
	if outLen == 0 {
		return []float32{}, nil
	}

	s, err := v.getState()
	if err != nil {
		return nil, err
	}
	defer v.pool.Put(s)

	n := v.frameSize
	half := n / 2
	analysisHop := float64(v.hop) * factor
	synthesisHop := float64(v.hop)

	frames := max(int(math.Ceil(float64(len(segment))/analysisHop)), 1)
	bufLen := max((frames-1)*v.hop+n, outLen)
	out := make([]float64, bufLen)
	norm := make([]float64, bufLen)

	prevPos := 0
	for m := range frames {
		pos := int(math.Round(float64(m) * analysisHop))

		for i := range n {
			s.frame[i] = 0
			if idx := pos + i; idx < len(segment) {
				s.frame[i] = float64(segment[idx])
			}
		}
		vecmath.MulBlockInPlace(s.frame, v.window)

		for i, x := range s.frame {
			s.spectrum[i] = complex(x, 0)
		}
		if err := s.plan.Forward(s.spectrum, s.spectrum); err != nil {
			return nil, errors.Wrap(err, "stretch: forward FFT failed")
		}

		for k := 0; k <= half; k++ {
			s.re[k] = real(s.spectrum[k])
			s.im[k] = imag(s.spectrum[k])
		}
		vecmath.Magnitude(s.mag, s.re, s.im)

		step := float64(pos - prevPos)
		for k := 0; k <= half; k++ {
			phase := math.Atan2(s.im[k], s.re[k])

			switch {
			case m == 0:
				s.sumPhase[k] = phase
			case step > 0:
				delta := wrapPhase(phase - s.prevPhase[k] - v.omega[k]*step)
				s.sumPhase[k] += (v.omega[k] + delta/step) * synthesisHop
			default:
				s.sumPhase[k] += v.omega[k] * synthesisHop
			}
			s.prevPhase[k] = phase

			s.synthesis[k] = complex(s.mag[k]*math.Cos(s.sumPhase[k]), s.mag[k]*math.Sin(s.sumPhase[k]))
		}

		// conjugate symmetry for a real output
		s.synthesis[0] = complex(real(s.synthesis[0]), 0)
		s.synthesis[half] = complex(real(s.synthesis[half]), 0)
		for k := 1; k < half; k++ {
			c := s.synthesis[k]
			s.synthesis[n-k] = complex(real(c), -imag(c))
		}

		if err := s.plan.Inverse(s.timeFrame, s.synthesis); err != nil {
			return nil, errors.Wrap(err, "stretch: inverse FFT failed")
		}

		outPos := m * v.hop
		for i := range n {
			w := v.window[i]
			out[outPos+i] += real(s.timeFrame[i]) * w
			norm[outPos+i] += w * w
		}

		prevPos = pos
	}

	result := make([]float32, outLen)
	for i := range result {
		if norm[i] > normFloor {
			result[i] = float32(out[i] / norm[i])
		}
	}

	return result, nil
}

func periodicHann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

func wrapPhase(x float64) float64 {
	x = math.Mod(x+math.Pi, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	return x - math.Pi
}
