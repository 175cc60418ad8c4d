// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	ErrInvalidEffect  = errors.New("invalid effect")
	ErrInvalidOptions = errors.New("invalid effect options")
)
