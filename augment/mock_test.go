// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"errors"
	"sync"

	"github.com/ik5/audaug/stretch"
)

var (
	errSelector = errors.New("selector failed")
	errModel    = errors.New("model failed")
)

// scriptedRand replays values modulo n.
type scriptedRand struct {
	mu     sync.Mutex
	values []int
	next   int
}

func (s *scriptedRand) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

type modelCall struct {
	start, end int
	factor     float64
}

// recordingModel remembers its calls and delegates to a real model.
type recordingModel struct {
	mu    sync.Mutex
	calls []modelCall
	inner stretch.Model
	err   error
}

func (m *recordingModel) Manipulate(data []float32, start, end int, factor float64) ([]float32, error) {
	m.mu.Lock()
	m.calls = append(m.calls, modelCall{start: start, end: end, factor: factor})
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if m.inner == nil {
		return stretch.Resample{}.Manipulate(data, start, end, factor)
	}
	return m.inner.Manipulate(data, start, end, factor)
}

func (m *recordingModel) lastCall() modelCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls[len(m.calls)-1]
}

type fixedSelector struct {
	start, end int
	err        error
}

func (f fixedSelector) Select([]float32, [2]float64, float64) (int, int, error) {
	return f.start, f.end, f.err
}
