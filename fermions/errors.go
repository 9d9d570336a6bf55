// SPDX-License-Identifier: MIT

package fermions

import "errors"

var (
	// ErrParse indicates input text that does not follow the canonical
	// product grammar.
	ErrParse = errors.New("fermions: malformed product string")

	// ErrNegativeMode indicates a mode index below zero.
	ErrNegativeMode = errors.New("fermions: negative mode index")

	// ErrRepeatedFermionMode indicates a mode appearing twice in one
	// ladder list; such a product is identically zero by exclusion and is
	// rejected rather than silently dropped.
	ErrRepeatedFermionMode = errors.New("fermions: repeated mode in ladder list")

	// ErrUnsortedModes indicates a ladder list out of increasing order.
	// Reordering fermionic factors changes the sign, so constructors do
	// not sort on the caller's behalf.
	ErrUnsortedModes = errors.New("fermions: ladder list not strictly increasing")

	// ErrNonCanonicalKey indicates a parsed hermitian key whose creator
	// list sorts after its annihilator list.
	ErrNonCanonicalKey = errors.New("fermions: non-canonical hermitian key")
)
