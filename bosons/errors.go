// SPDX-License-Identifier: MIT

package bosons

import "errors"

var (
	// ErrParse indicates input text that does not follow the canonical
	// product grammar.
	ErrParse = errors.New("bosons: malformed product string")

	// ErrNegativeMode indicates a mode index below zero.
	ErrNegativeMode = errors.New("bosons: negative mode index")

	// ErrNonCanonicalKey indicates a parsed hermitian key whose creator
	// list sorts after its annihilator list; such text never comes from a
	// canonical String rendering.
	ErrNonCanonicalKey = errors.New("bosons: non-canonical hermitian key")
)
