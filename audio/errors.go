// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
)
