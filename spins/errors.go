// SPDX-License-Identifier: MIT
// Package spins: sentinel error set. All user-facing failures in this
// package return one of these sentinels, matched via errors.Is; context
// (the offending substring, site index) is added by fmt.Errorf wrapping.

package spins

import "errors"

var (
	// ErrParse indicates a malformed canonical product string.
	ErrParse = errors.New("spins: malformed product string")

	// ErrDuplicateSite indicates the same site appeared twice in a parsed
	// or assignment-list construction.
	ErrDuplicateSite = errors.New("spins: site assigned twice")

	// ErrNegativeSite indicates a negative site index in a construction
	// input.
	ErrNegativeSite = errors.New("spins: negative site index")

	// ErrUnknownSymbol indicates a single-site symbol outside the closed
	// operator set of the requested basis.
	ErrUnknownSymbol = errors.New("spins: unknown single-site operator symbol")

	// ErrMatrixDimension indicates an operator touching sites at or beyond
	// the requested matrix system size.
	ErrMatrixDimension = errors.New("spins: operator exceeds requested system size")
)
