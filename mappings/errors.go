// SPDX-License-Identifier: MIT

package mappings

import "errors"

var (
	// ErrUnsupportedTermShape indicates a term without an image under the
	// requested mapping; the operand itself is well formed.
	ErrUnsupportedTermShape = errors.New("mappings: term shape has no image under this mapping")

	// ErrBadSpinsPerMode indicates a Dicke replica count below one.
	ErrBadSpinsPerMode = errors.New("mappings: spins per mode must be at least 1")
)
