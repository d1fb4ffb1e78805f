// SPDX-License-Identifier: EPL-2.0

package stretch

import "errors"

var (
	ErrInvalidRange     = errors.New("stretch: range must satisfy 0 <= start <= end <= len(data)")
	ErrInvalidFactor    = errors.New("stretch: factor must be positive and finite")
	ErrInvalidFrameSize = errors.New("stretch: frame size must be a power of two >= 64")
	ErrInvalidHop       = errors.New("stretch: hop must be in [1, frame size)")
)
