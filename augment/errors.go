// SPDX-License-Identifier: EPL-2.0

package augment

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidCount         = errors.New("number of variants must be positive")
	ErrEmptySignal          = errors.New("signal has no samples")
)
