// SPDX-License-Identifier: MIT

package mixed

import "errors"

var (
	// ErrParse indicates input text that does not follow the segmented
	// product grammar.
	ErrParse = errors.New("mixed: malformed product string")

	// ErrSubsystemMismatch indicates an operation over two mixed products
	// whose subsystem counts per kind disagree. This is an unsupported
	// operation, not a validation failure: both operands are well formed,
	// they just live on different composite systems.
	ErrSubsystemMismatch = errors.New("mixed: subsystem counts differ")

	// ErrNonCanonicalKey indicates a parsed hermitian key that sorts
	// after its conjugate.
	ErrNonCanonicalKey = errors.New("mixed: non-canonical hermitian key")
)
