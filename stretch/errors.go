// SPDX-License-Identifier: EPL-2.0

package stretch

import "errors"

var (
	ErrInvalidFactor      = errors.New("stretch factor must be positive and at most MaxFactor")
	ErrInvalidWindow      = errors.New("window length must be positive")
	ErrInvalidSensitivity = errors.New("onset sensitivity must be finite")
)
