// SPDX-License-Identifier: MIT

package traverse

import "errors"

// ErrNilFunc is returned when a visitor, fold or merge function is nil.
var ErrNilFunc = errors.New("traverse: nil function")
