// SPDX-License-Identifier: EPL-2.0

package onset

import "errors"

var (
	ErrEmptyWaveform = errors.New("waveform is empty")
	ErrInvalidConfig = errors.New("invalid onset configuration")
)
