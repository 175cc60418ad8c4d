// SPDX-License-Identifier: EPL-2.0

package formats

import "errors"

// ErrUnsupportedFormat indicates no decoder is registered for a file
// extension and ffmpeg is not available to fall back on.
var ErrUnsupportedFormat = errors.New("unsupported audio format")
