// SPDX-License-Identifier: EPL-2.0

package spectral

import "errors"

var (
	ErrInvalidWidth = errors.New("delta width must be odd and at least 3")
	ErrInvalidOrder = errors.New("delta order must be 1 or 2")
)
