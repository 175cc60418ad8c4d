// SPDX-License-Identifier: EPL-2.0

package feature

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid feature configuration")
	ErrNoNote            = errors.New("frequency has no note")
	ErrDimensionMismatch = errors.New("feature vectors differ in length")
	ErrNoCandidates      = errors.New("no candidate vectors")
)
